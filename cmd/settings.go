package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/constellation/internal/config"
	"github.com/philipparndt/constellation/internal/logging"
	"github.com/philipparndt/constellation/pkg/scene"
)

var settings struct {
	configPath string
	count      int
	radius     float64
	tolerance  float64
	maxEdges   int
	seed       uint64
	logLevel   string
}

// BindConfigFlags adds the configuration flags to c and its subcommands
func BindConfigFlags(c *cobra.Command) {
	defaults := config.Default()
	f := c.PersistentFlags()
	f.StringVarP(&settings.configPath, "config", "c", "", "Path to a YAML config file")
	f.IntVarP(&settings.count, "count", "n", defaults.Stars.Count, "Number of stars")
	f.Float64VarP(&settings.radius, "radius", "r", defaults.Stars.Radius, "Radius of the star shell")
	f.Float64Var(&settings.tolerance, "tolerance", defaults.Pick.Tolerance, "Pick tolerance in pixels")
	f.IntVar(&settings.maxEdges, "max-edges", defaults.Constellation.MaxEdges, "Capacity of the line buffer")
	f.Uint64Var(&settings.seed, "seed", 0, "Seed for a reproducible star field")
	f.StringVar(&settings.logLevel, "log-level", defaults.Log.Level, "Log level (debug, info, warn, error)")
}

// LoadSettings loads the config file, applies the flags that were set on the
// command line and builds the logger
func LoadSettings(c *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg := config.Default()
	if settings.configPath != "" {
		loaded, err := config.Load(settings.configPath)
		if err != nil {
			return cfg, nil, err
		}
		cfg = loaded
	}

	f := c.Flags()
	if f.Changed("count") {
		cfg.Stars.Count = settings.count
	}
	if f.Changed("radius") {
		cfg.Stars.Radius = settings.radius
	}
	if f.Changed("tolerance") {
		cfg.Pick.Tolerance = settings.tolerance
	}
	if f.Changed("max-edges") {
		cfg.Constellation.MaxEdges = settings.maxEdges
	}
	if f.Changed("seed") {
		seed := settings.seed
		cfg.Stars.Seed = &seed
	}
	if f.Changed("log-level") {
		cfg.Log.Level = settings.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

// SceneOptions maps the configuration onto scene options
func SceneOptions(cfg config.Config, logger *zap.Logger) scene.Options {
	return scene.Options{
		Name:      cfg.Constellation.Name,
		Capacity:  cfg.Constellation.MaxEdges,
		Tolerance: cfg.Pick.Tolerance,
		FOV:       cfg.Camera.FOV,
		Distance:  cfg.Camera.Distance,
		Logger:    logger,
	}
}
