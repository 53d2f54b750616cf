package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/philipparndt/constellation/internal/surface"
	"github.com/philipparndt/constellation/pkg/pick"
)

// handleInput processes user input
func (app *App) handleInput() {
	app.Interaction.mousePos = rl.GetMousePosition()

	if app.UI.name.Editing() {
		app.handleNameInput()
	} else {
		app.handleKeys()
	}

	mouse := app.Interaction.mousePos
	cam := app.Scene.Camera

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.click.Press(float64(mouse.X), float64(mouse.Y))
	}

	// Look around with mouse drag
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.click.Pressed() {
		delta := rl.GetMouseDelta()
		app.Interaction.click.Move(float64(delta.X), float64(delta.Y))
		surface.Look(cam, float64(delta.X), float64(delta.Y))
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if app.Interaction.click.Release(float64(mouse.X), float64(mouse.Y)) {
			app.handleClick(mouse)
		}
	}

	surface.Wheel(cam, float64(rl.GetMouseWheelMove()))

	// Update hover highlight (only when not dragging)
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.updateHoverStar()
	}
}

// handleKeys processes keyboard shortcuts
func (app *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		// Cancel a half-built edge
		app.Scene.HandleMissEvent(float64(app.Interaction.mousePos.X), float64(app.Interaction.mousePos.Y))
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.Scene.Graph.Reset()
		app.log.Info("constellation cleared")
	}
	if rl.IsKeyPressed(rl.KeyN) {
		app.UI.name.Begin(app.Scene.Graph.Name())
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}
}

// handleNameInput feeds typed characters into the name editor
func (app *App) handleNameInput() {
	for char := rl.GetCharPressed(); char != 0; char = rl.GetCharPressed() {
		app.UI.name.Type(rune(char))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		app.UI.name.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		name := app.UI.name.Commit()
		app.Scene.Graph.SetName(name)
		app.log.Info("constellation renamed", zap.String("name", name))
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.UI.name.Cancel()
	}
}

// handleClick forwards a click to the scene. The hovered star is passed
// along so the scene does not cast the same ray again.
func (app *App) handleClick(mouse rl.Vector2) {
	x, y := float64(mouse.X), float64(mouse.Y)

	var ev pick.Event = pick.At(x, y)
	if app.Interaction.hasHovered {
		ev = pick.Hit(app.Interaction.hovered, x, y)
	}

	outcome := app.Scene.HandlePointer(ev)
	app.log.Debug("click", zap.Float64("x", x), zap.Float64("y", y), zap.Stringer("outcome", outcome))
}

// updateHoverStar finds the star under the cursor
func (app *App) updateHoverStar() {
	sc := app.Scene
	mouse := app.Interaction.mousePos

	app.Interaction.hasHovered = false
	if !sc.Viewport.Contains(float64(mouse.X), float64(mouse.Y)) {
		return
	}

	ray := sc.Camera.Ray(float64(mouse.X), float64(mouse.Y), sc.Viewport)
	if best, ok := sc.Resolver.Nearest(ray, sc.Camera, sc.Viewport, sc.Cloud); ok {
		app.Interaction.hovered = best.Index
		app.Interaction.hasHovered = true
	}
}
