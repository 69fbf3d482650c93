// Package config loads and validates the run configuration. Validation is
// the only fatal error path in the system; everything downstream absorbs its
// edge cases numerically.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"islandsim/erosion"
)

// Noise holds the fractal terrain generation parameters.
type Noise struct {
	Octaves      int     `json:"noise_octaves"`
	Frequency    float64 `json:"noise_frequency"`
	Persistence  float64 `json:"noise_persistence"`
	FalloffShape float64 `json:"falloff_shape"`
}

// Erosion mirrors erosion.State with the recognized option names.
type Erosion struct {
	DropletCount       int     `json:"droplet_count"`
	MaxDropletLifetime int     `json:"max_droplet_lifetime"`
	Inertia            float32 `json:"inertia"`
	CapacityFactor     float32 `json:"capacity_factor"`
	MinSlope           float32 `json:"min_slope"`
	ErosionRate        float32 `json:"erosion_rate"`
	DepositionRate     float32 `json:"deposition_rate"`
	EvaporationRate    float32 `json:"evaporation_rate"`
	Gravity            float32 `json:"gravity"`
}

// Sources configures the optional river springs that trickle extra droplets
// from high terrain after the main droplet pass. A zero count disables the
// pass entirely.
type Sources struct {
	Count        int     `json:"source_count"`
	Flux         float32 `json:"source_flux"`
	MinElevation float32 `json:"source_min_elevation"`
	Ticks        int     `json:"source_ticks"`
}

// Config is the full configuration bundle. All values are fixed before a run
// starts.
type Config struct {
	Seed    int64   `json:"seed"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Noise   Noise   `json:"noise"`
	Erosion Erosion `json:"erosion"`
	Sources Sources `json:"sources"`
}

// Default returns the standard configuration.
func Default() Config {
	var state = erosion.DefaultState()
	return Config{
		Seed:   1337,
		Width:  512,
		Height: 512,
		Noise: Noise{
			Octaves:      4,
			Frequency:    2.0,
			Persistence:  0.5,
			FalloffShape: 2.0,
		},
		Erosion: Erosion{
			DropletCount:       state.DropletCount,
			MaxDropletLifetime: state.MaxDropletLifetime,
			Inertia:            state.Inertia,
			CapacityFactor:     state.CapacityFactor,
			MinSlope:           state.MinSlope,
			ErosionRate:        state.ErosionRate,
			DepositionRate:     state.DepositionRate,
			EvaporationRate:    state.EvaporationRate,
			Gravity:            state.Gravity,
		},
		Sources: Sources{
			Count:        0,
			Flux:         0.01,
			MinElevation: 0.3,
			Ticks:        200,
		},
	}
}

// Load reads a JSON config file over the defaults, so partial files only
// override the options they name.
func Load(path string) (Config, error) {
	var cfg = Default()
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the bundle before any generation or simulation begins.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid dimensions %dx%d", c.Width, c.Height)
	}
	if c.Noise.Octaves <= 0 {
		return fmt.Errorf("config: noise octaves must be positive, got %d", c.Noise.Octaves)
	}
	if c.Noise.Frequency <= 0 {
		return fmt.Errorf("config: noise frequency must be positive, got %f", c.Noise.Frequency)
	}
	if c.Noise.Persistence <= 0 || c.Noise.Persistence > 1 {
		return fmt.Errorf("config: noise persistence must be in (0, 1], got %f", c.Noise.Persistence)
	}
	if c.Noise.FalloffShape <= 0 {
		return fmt.Errorf("config: falloff shape must be positive, got %f", c.Noise.FalloffShape)
	}
	if c.Sources.Count < 0 {
		return fmt.Errorf("config: source count must be non-negative, got %d", c.Sources.Count)
	}
	if c.Sources.Count > 0 {
		if c.Sources.Flux <= 0 {
			return fmt.Errorf("config: source flux must be positive, got %f", c.Sources.Flux)
		}
		if c.Sources.MinElevation < 0 || c.Sources.MinElevation >= 1 {
			return fmt.Errorf("config: source min elevation must be in [0, 1), got %f", c.Sources.MinElevation)
		}
		if c.Sources.Ticks <= 0 {
			return fmt.Errorf("config: source ticks must be positive, got %d", c.Sources.Ticks)
		}
	}
	var state = c.ErosionState()
	if err := state.Validate(); err != nil {
		return err
	}
	return nil
}

// ErosionState converts the bundle's erosion section into the simulator's
// tuning struct, filling in the fields the wire format does not expose.
func (c *Config) ErosionState() erosion.State {
	var state = erosion.DefaultState()
	state.DropletCount = c.Erosion.DropletCount
	state.MaxDropletLifetime = c.Erosion.MaxDropletLifetime
	state.Inertia = c.Erosion.Inertia
	state.CapacityFactor = c.Erosion.CapacityFactor
	state.MinSlope = c.Erosion.MinSlope
	state.ErosionRate = c.Erosion.ErosionRate
	state.DepositionRate = c.Erosion.DepositionRate
	state.EvaporationRate = c.Erosion.EvaporationRate
	state.Gravity = c.Erosion.Gravity
	return state
}
