package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/constellation/internal/app"
	"github.com/philipparndt/constellation/pkg/starfield"
	"github.com/philipparndt/constellation/version"
)

var rootCmd = &cobra.Command{
	Use:   "constellation",
	Short: "Draw constellations by connecting stars in a 3D star field",
	Long: `constellation opens a star field around the camera. Click two stars to
connect them with a line, click a star twice or empty sky to cancel.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runView,
}

func init() {
	BindConfigFlags(rootCmd)
}

func runView(c *cobra.Command, _ []string) error {
	cfg, logger, err := LoadSettings(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cloud := starfield.Generate(cfg.Stars.Count, cfg.Stars.Radius, cfg.Stars.Seed)
	logger.Info("star field generated",
		zap.Int("count", cloud.Len()),
		zap.Float64("radius", cfg.Stars.Radius))

	app.Run(cloud, SceneOptions(cfg, logger))
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
