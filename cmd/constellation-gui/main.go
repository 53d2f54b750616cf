package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/constellation/cmd"
	"github.com/philipparndt/constellation/internal/gui"
	"github.com/philipparndt/constellation/pkg/scene"
	"github.com/philipparndt/constellation/pkg/starfield"
	"github.com/philipparndt/constellation/version"
)

func main() {
	root := &cobra.Command{
		Use:           "constellation-gui",
		Short:         "Draw constellations in a desktop window",
		Version:       version.GetFullVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.BindConfigFlags(root)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cobra.Command, _ []string) error {
	cfg, logger, err := cmd.LoadSettings(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cloud := starfield.Generate(cfg.Stars.Count, cfg.Stars.Radius, cfg.Stars.Seed)
	sc := scene.New(cloud, cmd.SceneOptions(cfg, logger))

	a := app.New()
	w := a.NewWindow("Constellation")

	panel := gui.NewPanel(sc)
	w.SetContent(panel.Content())
	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()

	logger.Info("window closed",
		zap.String("name", sc.Graph.Name()),
		zap.Int("edges", len(sc.Graph.Edges())),
		zap.Int("dropped", sc.Graph.Dropped()))
	return nil
}
