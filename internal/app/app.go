// Package app is the raylib window for building constellations.
package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/philipparndt/constellation/pkg/scene"
	"github.com/philipparndt/constellation/pkg/starfield"
)

var (
	backgroundColor = rl.NewColor(5, 6, 14, 255)
	starColor       = rl.NewColor(235, 235, 255, 255)
	lineColor       = rl.NewColor(255, 255, 255, 200)
	highlightColor  = rl.NewColor(0, 255, 255, 255)
	hoverColor      = rl.NewColor(255, 220, 120, 255)
)

type App struct {
	Scene       *scene.Scene
	Camera      CameraState
	Interaction InteractionState
	UI          UIState

	stars *starMount
	log   *zap.Logger
}

// Run opens the window and blocks until it is closed
func Run(cloud *starfield.Cloud, opts scene.Options) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	stars := &starMount{cloud: cloud}
	opts.Source = stars
	sc := scene.New(cloud, opts)

	app := &App{
		Scene: sc,
		stars: stars,
		log:   sc.Logger().Named("app"),
	}
	app.UI.showHelp = true
	app.saveDefaultView()

	// Initialize window
	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "Constellation")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // ESC cancels the selection instead of closing

	app.UI.font = rl.GetFontDefault()
	app.updateCamera()

	app.log.Info("window opened", zap.Int32("width", screenWidth), zap.Int32("height", screenHeight))

	// Main loop
	for !rl.WindowShouldClose() {
		// Check for Ctrl+Q to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		// Update
		app.updateCamera()
		app.handleInput()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		app.drawStars()
		app.drawLines()
		app.drawMarkers()
		app.drawUI()

		rl.EndDrawing()

		if !app.stars.presented {
			app.stars.presented = true
			app.log.Debug("stars presented", zap.Int("count", cloud.Len()))
			if sc.Graph.Stale() {
				sc.Graph.Rebuild()
			}
		}
	}

	// Cleanup
	rl.CloseWindow()
	app.log.Info("window closed",
		zap.String("name", sc.Graph.Name()),
		zap.Int("edges", len(sc.Graph.Edges())),
		zap.Int("dropped", sc.Graph.Dropped()))
}
