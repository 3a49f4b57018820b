package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds render settings for the demo renderer.
type Config struct {
	// Viewport; rounded up to multiples of 8 by the framebuffer.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Animation length in frames.
	Frames int `json:"frames"`

	// Supersample renders at a multiple of the viewport and downsamples.
	Supersample int `json:"supersample"`

	// ZScale maps view-space z to the 16-bit depth range.
	ZScale float64 `json:"z_scale"`

	// Inputs; empty selects the built-in cube and checker texture.
	MeshPath    string `json:"mesh"`
	TexturePath string `json:"texture"`

	// Kernel selection: "exact" or "approx"; for approx, "quadratic" or
	// "affine"; blend "overwrite" or "xor".
	Kernel string `json:"kernel"`
	Interp string `json:"interp"`
	Blend  string `json:"blend"`

	OutputDir   string `json:"output_dir"`
	WebPQuality int    `json:"webp_quality"`
	Workers     int    `json:"workers"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values; call Resolve afterwards.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Frames    int
	OutputDir string
	Kernel    string
	Workers   int
}

// Resolve applies flag overrides and fills remaining fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Kernel != "" {
		c.Kernel = flags.Kernel
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.ZScale <= 0 {
		c.ZScale = 4096
	}
	if c.Kernel == "" {
		c.Kernel = "exact"
	}
	if c.Interp == "" {
		c.Interp = "quadratic"
	}
	if c.Blend == "" {
		c.Blend = "overwrite"
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
