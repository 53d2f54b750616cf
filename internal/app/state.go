package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/constellation/internal/surface"
	"github.com/philipparndt/constellation/pkg/starfield"
)

// CameraState holds the view the Home key returns to
type CameraState struct {
	defaultFOV       float64 // Radians
	defaultRotationX float64
	defaultRotationY float64
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	click      surface.ClickTracker
	mousePos   rl.Vector2
	hovered    int // Star under the cursor, valid when hasHovered
	hasHovered bool
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	name     surface.NameEditor
	showHelp bool
}

// starMount hands the cloud positions to the graph once they have been
// presented on screen at least once
type starMount struct {
	cloud     *starfield.Cloud
	presented bool
}

func (m *starMount) Positions() []float32 {
	if !m.presented {
		return nil
	}
	return m.cloud.Positions()
}
