// Package config loads preview-run settings from a JSON file, with CLI
// flags taking priority over file values and sane defaults filling the rest.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	Definition string `json:"definition"` // creature definition YAML, empty = built-in elephant
	Texture    string `json:"texture"`    // optional skin texture (PNG, JPEG, TGA)
	OutputDir  string `json:"output_dir"`

	// Simulation settings
	Frames      int     `json:"frames"`
	FPS         int     `json:"fps"`
	Seed        int64   `json:"seed"`
	VariantSeed float64 `json:"variant_seed"`
	Fur         bool    `json:"fur"`

	// Render settings
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	WebPQuality int     `json:"webp_quality"`
	CameraYaw   float64 `json:"camera_yaw"`   // degrees
	CameraPitch float64 `json:"camera_pitch"` // degrees
	Workers     int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
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

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Definition != "" {
		c.Definition = flags.Definition
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Fur {
		c.Fur = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.CameraYaw == 0 {
		c.CameraYaw = 35
	}
	if c.CameraPitch == 0 {
		c.CameraPitch = 18
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Definition string
	Texture    string
	OutputDir  string
	Frames     int
	Seed       int64
	Quality    int
	Workers    int
	Fur        bool
}
