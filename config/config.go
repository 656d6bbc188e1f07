// Package config loads and validates routepuzzle settings.
//
// Settings come from an optional YAML file layered over Default(); every
// loaded Config is validated with go-playground/validator struct tags plus
// the cross-field rule that the margin leaves a non-empty sampling area.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate = validator.New()

// Area describes the play area.
type Area struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
	Margin float64 `yaml:"margin" validate:"gte=0"`
}

// Generation controls node placement.
type Generation struct {
	MinDistance float64 `yaml:"min_distance" validate:"gt=0"`
	MaxAttempts int     `yaml:"max_attempts" validate:"gte=1"`
}

// Solver bounds the exact search.
type Solver struct {
	MaxNodes int `yaml:"max_nodes" validate:"gte=2,lte=12"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// Metrics enables the Prometheus endpoint when Addr is non-empty.
type Metrics struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Config is the complete application configuration.
type Config struct {
	Area       Area       `yaml:"area"`
	Generation Generation `yaml:"generation"`
	Solver     Solver     `yaml:"solver"`
	Log        Log        `yaml:"log"`
	Metrics    Metrics    `yaml:"metrics"`
}

// Default returns the settings of the original 800×600 puzzle.
func Default() Config {
	return Config{
		Area:       Area{Width: 800, Height: 600, Margin: 80},
		Generation: Generation{MinDistance: 60, MaxAttempts: 100000},
		Solver:     Solver{MaxNodes: 10},
		Log:        Log{Level: "info", Format: "json"},
	}
}

// Load reads path and overlays it on Default. An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field tags and cross-field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if 2*c.Area.Margin >= c.Area.Width || 2*c.Area.Margin >= c.Area.Height {
		return fmt.Errorf("%w: area.margin %v leaves no room in %vx%v",
			ErrInvalidConfig, c.Area.Margin, c.Area.Width, c.Area.Height)
	}

	return nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
	}

	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}
