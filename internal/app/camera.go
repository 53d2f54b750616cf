package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/constellation/pkg/viewer"
)

// saveDefaultView remembers the current camera for resetCameraView
func (app *App) saveDefaultView() {
	cam := app.Scene.Camera
	app.Camera.defaultFOV = cam.FOV
	app.Camera.defaultRotationX = cam.RotationX
	app.Camera.defaultRotationY = cam.RotationY
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	cam := app.Scene.Camera
	cam.FOV = app.Camera.defaultFOV
	cam.RotationX = app.Camera.defaultRotationX
	cam.RotationY = app.Camera.defaultRotationY
	cam.UpdatePosition()
}

// updateCamera keeps the scene viewport in sync with the window size
func (app *App) updateCamera() {
	vp := viewer.NewViewport(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	if vp != app.Scene.Viewport {
		app.Scene.Resize(vp)
	}
}
