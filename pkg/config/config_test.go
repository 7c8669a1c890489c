package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/grigorchuk/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Enumerate.Limit != 10000 {
		t.Errorf("limit = %d", cfg.Enumerate.Limit)
	}
	if !cfg.View.Lines || !cfg.View.Labels {
		t.Error("lines and labels should default on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
[enumerate]
limit = 250

[view]
labels = false
canvas = "G"

[render]
format = "svg"
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Enumerate.Limit != 250 {
		t.Errorf("limit = %d", cfg.Enumerate.Limit)
	}
	if cfg.View.Labels || !cfg.View.Lines {
		t.Errorf("view = %+v", cfg.View)
	}
	if cfg.View.Canvas != CanvasDistance {
		t.Errorf("canvas = %q", cfg.View.Canvas)
	}
	if cfg.Render.Format != FormatSVG || cfg.Render.Radius != 4 {
		t.Errorf("render = %+v", cfg.Render)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		code errors.Code
	}{
		{"syntax", "[enumerate\nlimit = 1", errors.ErrCodeInvalidConfig},
		{"unknown key", "[view]\ncolour = true", errors.ErrCodeInvalidConfig},
		{"limit", "[enumerate]\nlimit = 0", errors.ErrCodeInvalidConfig},
		{"canvas", "[view]\ncanvas = \"X\"", errors.ErrCodeInvalidConfig},
		{"radius", "[render]\nradius = 99", errors.ErrCodeInvalidConfig},
		{"format", "[render]\nformat = \"png\"", errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, %v", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "grigorchuk.toml")
	if err := os.WriteFile(path, []byte("[render]\nradius = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.Radius != 2 {
		t.Errorf("radius = %d", cfg.Render.Radius)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing file: err = %v", err)
	}
}
