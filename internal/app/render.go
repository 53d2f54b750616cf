package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// The star shell is far larger than raylib's default 3D clip range, so
// everything is projected with the scene camera and drawn in screen space.

// drawStars plots every star that is in front of the camera
func (app *App) drawStars() {
	sc := app.Scene
	proj := sc.Camera.Projector(sc.Viewport)
	positions := sc.Cloud.Positions()

	for i := 0; i+2 < len(positions); i += 3 {
		x, y, _, ok := proj.ProjectXYZ(positions[i], positions[i+1], positions[i+2])
		if !ok || !sc.Viewport.Contains(x, y) {
			continue
		}
		rl.DrawRectangle(int32(x), int32(y), 2, 2, starColor)
	}
}

// drawLines draws the live part of the line buffer
func (app *App) drawLines() {
	sc := app.Scene
	buf := sc.Graph.Buffer()
	vertices := buf.Vertices()
	proj := sc.Camera.Projector(sc.Viewport)

	for i := 0; i+5 < buf.DrawRange()*3; i += 6 {
		x1, y1, _, okA := proj.ProjectXYZ(vertices[i], vertices[i+1], vertices[i+2])
		x2, y2, _, okB := proj.ProjectXYZ(vertices[i+3], vertices[i+4], vertices[i+5])
		if !okA || !okB {
			continue
		}
		rl.DrawLineEx(
			rl.Vector2{X: float32(x1), Y: float32(y1)},
			rl.Vector2{X: float32(x2), Y: float32(y2)},
			1.5, lineColor)
	}
}

// drawMarkers draws the pending star and the star under the cursor
func (app *App) drawMarkers() {
	sc := app.Scene

	if pos, ok := sc.Highlight(); ok {
		if x, y, _, visible := sc.Camera.Project(pos, sc.Viewport); visible {
			rl.DrawCircle(int32(x), int32(y), 5, highlightColor)
		}
	}

	if app.Interaction.hasHovered {
		pos := sc.Cloud.At(app.Interaction.hovered)
		if x, y, _, visible := sc.Camera.Project(pos, sc.Viewport); visible {
			rl.DrawCircleLines(int32(x), int32(y), 8, hoverColor)
		}
	}
}
