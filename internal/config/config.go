// Package config holds the startup configuration of the star field and
// the constellation editor.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate
)

func init() {
	validate = validator.New()

	// Report fields by their YAML key
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Config is the complete application configuration
type Config struct {
	Stars         Stars         `yaml:"stars"`
	Pick          Pick          `yaml:"pick"`
	Constellation Constellation `yaml:"constellation"`
	Camera        Camera        `yaml:"camera"`
	Log           Log           `yaml:"log"`
}

// Stars configures the generated point cloud
type Stars struct {
	Count  int     `yaml:"count" validate:"min=0,max=1000000"`
	Radius float64 `yaml:"radius" validate:"gt=0"`
	Seed   *uint64 `yaml:"seed,omitempty"`
}

// Pick configures pointer picking
type Pick struct {
	Tolerance float64 `yaml:"tolerance" validate:"gt=0,max=500"` // Pixels
}

// Constellation configures the edge graph
type Constellation struct {
	Name     string `yaml:"name" validate:"max=200"`
	MaxEdges int    `yaml:"max_edges" validate:"min=1,max=100000"`
}

// Camera configures the initial view
type Camera struct {
	FOV      float64 `yaml:"fov" validate:"gt=0,lt=180"` // Degrees
	Distance float64 `yaml:"distance" validate:"gt=0"`
}

// Log configures the logger
type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Stars: Stars{
			Count:  5000,
			Radius: 1000,
		},
		Pick: Pick{
			Tolerance: 30,
		},
		Constellation: Constellation{
			Name:     "My Constellation",
			MaxEdges: 2000,
		},
		Camera: Camera{
			FOV:      60,
			Distance: 0.1,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	return Struct(c)
}

// Struct validates any tagged struct and formats the first failure. Other
// packages reading YAML use it so errors look the same everywhere.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into user-friendly messages
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "len":
			return fmt.Errorf("%s: must have length %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "lt":
			return fmt.Errorf("%s: must be less than %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
