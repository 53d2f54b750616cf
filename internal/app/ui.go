package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/constellation/version"
)

// drawUI draws the user interface
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(22)
	fontSize20 := float32(20)
	fontSize16 := float32(16)
	fontSize12 := float32(12)
	graph := app.Scene.Graph

	// === CONSTELLATION ===
	name := graph.Name()
	nameColor := rl.White
	if app.UI.name.Editing() {
		name = app.UI.name.Text() + "_"
		nameColor = rl.Yellow
	}
	rl.DrawTextEx(app.UI.font, name, rl.Vector2{X: 10, Y: y}, fontSize20, 2, nameColor)
	y += lineHeight + 4

	rl.DrawTextEx(app.UI.font, graph.Status(), rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.LightGray)
	y += lineHeight

	if app.Interaction.hasHovered {
		text := fmt.Sprintf("Star: %d", app.Interaction.hovered)
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 10, Y: y}, fontSize16, 1, hoverColor)
		y += lineHeight
	}

	if graph.Dropped() > 0 {
		text := fmt.Sprintf("Line buffer full (%d dropped)", graph.Dropped())
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Orange)
		y += lineHeight
	}
	y += lineHeight

	// === HELP ===
	if app.UI.showHelp {
		help := []string{
			"Click two stars: connect them",
			"Click a star twice: deselect",
			"Click empty sky / ESC: cancel",
			"Drag: look around | Wheel: zoom",
			"Home: reset view | R: clear lines",
			"N: rename | H: hide help",
		}
		if app.UI.name.Editing() {
			help = []string{"Enter: save name | ESC: cancel"}
		}
		for _, line := range help {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Gray)
			y += lineHeight
		}
	}

	// Version, FOV and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 24
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)
	x := 10 + rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X + 15

	fovText := fmt.Sprintf("FOV: %.0f deg", app.Scene.Camera.FOV*180/math.Pi)
	rl.DrawTextEx(app.UI.font, fovText, rl.Vector2{X: x, Y: bottomY}, fontSize12, 1, rl.Gray)
	x += rl.MeasureTextEx(app.UI.font, fovText, fontSize12, 1).X + 15

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: x, Y: bottomY}, fontSize12, 1, rl.Lime)
}
