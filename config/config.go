// Package config loads meshlab settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Viewer configures the 3D viewer window.
type Viewer struct {
	Width     int  `toml:"width"`
	Height    int  `toml:"height"`
	Wireframe bool `toml:"wireframe"`
	Lighting  bool `toml:"lighting"`
}

// Smoothing configures the animated Laplacian smoothing.
type Smoothing struct {
	Iterations int     `toml:"iterations"`
	Lambda     float64 `toml:"lambda"`
	// TickMillis is the delay between animated smoothing passes.
	TickMillis int `toml:"tick_ms"`
}

// Tick returns TickMillis as a duration.
func (s Smoothing) Tick() time.Duration {
	return time.Duration(s.TickMillis) * time.Millisecond
}

// Editor configures the sketch editor window.
type Editor struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	HitTolerance   float64 `toml:"hit_tolerance"`
	CloseTolerance float64 `toml:"close_tolerance"`
}

// Config is the full meshlab configuration.
type Config struct {
	Viewer    Viewer    `toml:"viewer"`
	Smoothing Smoothing `toml:"smoothing"`
	Editor    Editor    `toml:"editor"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Viewer: Viewer{
			Width:    800,
			Height:   600,
			Lighting: true,
		},
		Smoothing: Smoothing{
			Iterations: 20,
			Lambda:     0.3,
			TickMillis: 200,
		},
		Editor: Editor{
			Width:          800,
			Height:         600,
			HitTolerance:   6,
			CloseTolerance: 10,
		},
	}
}

// DefaultPath is ~/.config/meshlab/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not find home directory: %w", err)
	}
	return filepath.Join(home, ".config", "meshlab", "config.toml"), nil
}

// Load reads the config at path, expanding a leading ~. A missing file is not
// an error and yields Default. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not expand config path %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("could not read config %s: %w", expanded, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", expanded, err)
	}
	return c, nil
}

// Parse decodes TOML over Default and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewer size %dx%d must be positive", c.Viewer.Width, c.Viewer.Height))
	}
	if c.Editor.Width <= 0 || c.Editor.Height <= 0 {
		errs = append(errs, fmt.Errorf("editor size %dx%d must be positive", c.Editor.Width, c.Editor.Height))
	}
	if c.Smoothing.Iterations < 0 {
		errs = append(errs, fmt.Errorf("smoothing iterations %d must not be negative", c.Smoothing.Iterations))
	}
	if c.Smoothing.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("smoothing tick_ms %d must be positive", c.Smoothing.TickMillis))
	}
	if c.Editor.HitTolerance < 0 || c.Editor.CloseTolerance < 0 {
		errs = append(errs, errors.New("editor tolerances must not be negative"))
	}
	return errors.Join(errs...)
}
