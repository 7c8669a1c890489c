// Package config loads grigorchuk settings from TOML files.
//
// A file may set any subset of the keys below; missing keys keep their
// defaults, and command-line flags override both.
//
//	[enumerate]
//	limit = 10000     # node budget of the breadth-first enumeration
//
//	[view]
//	lines  = true     # annotate tiles with the halves g | ga
//	labels = true     # annotate tiles with their decoded word
//	canvas = "G"      # "G" colors tiles by distance, "" leaves them plain
//
//	[render]
//	radius = 4        # steps from the origin to materialize
//	format = "dot"    # dot, svg or json
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/grigorchuk/pkg/errors"
)

// Canvas names.
const (
	CanvasNone     = ""
	CanvasDistance = "G"
)

// Render formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// MaxRadius bounds render.radius.
const MaxRadius = 16

// Config holds all settings.
type Config struct {
	Enumerate EnumerateConfig `toml:"enumerate"`
	View      ViewConfig      `toml:"view"`
	Render    RenderConfig    `toml:"render"`
}

// EnumerateConfig configures breadth-first enumeration.
type EnumerateConfig struct {
	Limit int `toml:"limit"`
}

// ViewConfig configures how tiles are annotated.
type ViewConfig struct {
	Lines  bool   `toml:"lines"`
	Labels bool   `toml:"labels"`
	Canvas string `toml:"canvas"`
}

// RenderConfig configures graph output.
type RenderConfig struct {
	Radius int    `toml:"radius"`
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Enumerate: EnumerateConfig{Limit: 10000},
		View:      ViewConfig{Lines: true, Labels: true},
		Render:    RenderConfig{Radius: 4, Format: FormatDOT},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := cfg.decode(string(data)); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	return cfg, cfg.Validate()
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (Config, error) {
	cfg := Default()
	if err := cfg.decode(text); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(text string) error {
	md, err := toml.Decode(text, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	if c.Enumerate.Limit < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "enumerate.limit must be positive, got %d", c.Enumerate.Limit)
	}
	switch c.View.Canvas {
	case CanvasNone, CanvasDistance:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "view.canvas must be %q or empty, got %q", CanvasDistance, c.View.Canvas)
	}
	if c.Render.Radius < 0 || c.Render.Radius > MaxRadius {
		return errors.New(errors.ErrCodeInvalidConfig, "render.radius must be in [0,%d], got %d", MaxRadius, c.Render.Radius)
	}
	switch c.Render.Format {
	case FormatDOT, FormatSVG, FormatJSON:
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "render.format must be dot, svg or json, got %q", c.Render.Format)
	}
	return nil
}
