package erosion

import (
	"fmt"
)

// State holds the erosion tuning constants. All fields are read-only inputs
// fixed before a run begins; Validate is the single fatal error path, checked
// once before any simulation work.
type State struct {
	DropletCount                                 int
	MaxDropletLifetime                           int
	Inertia, CapacityFactor, MinSlope            float32
	ErosionRate, DepositionRate, EvaporationRate float32
	Gravity, InitialWaterVolume, InitialSpeed    float32
}

// DefaultState mirrors the constants the simulation was tuned with, scaled
// for heightmaps normalized to [0, 1].
func DefaultState() State {
	return State{
		DropletCount:       70000,
		MaxDropletLifetime: 64,
		Inertia:            0.1,
		CapacityFactor:     8.0,
		MinSlope:           0.01,
		ErosionRate:        0.01,
		DepositionRate:     0.1,
		EvaporationRate:    0.05,
		Gravity:            4.0,
		InitialWaterVolume: 1.0,
		InitialSpeed:       1.0,
	}
}

func (s *State) Validate() error {
	if s.DropletCount <= 0 {
		return fmt.Errorf("erosion: droplet count must be positive, got %d", s.DropletCount)
	}
	if s.MaxDropletLifetime <= 0 {
		return fmt.Errorf("erosion: max droplet lifetime must be positive, got %d", s.MaxDropletLifetime)
	}
	if s.Inertia < 0 || s.Inertia > 1 {
		return fmt.Errorf("erosion: inertia must be in [0, 1], got %f", s.Inertia)
	}
	if s.CapacityFactor <= 0 {
		return fmt.Errorf("erosion: capacity factor must be positive, got %f", s.CapacityFactor)
	}
	if s.MinSlope < 0 {
		return fmt.Errorf("erosion: min slope must be non-negative, got %f", s.MinSlope)
	}
	if s.ErosionRate <= 0 || s.ErosionRate > 1 {
		return fmt.Errorf("erosion: erosion rate must be in (0, 1], got %f", s.ErosionRate)
	}
	if s.DepositionRate <= 0 || s.DepositionRate > 1 {
		return fmt.Errorf("erosion: deposition rate must be in (0, 1], got %f", s.DepositionRate)
	}
	if s.EvaporationRate <= 0 || s.EvaporationRate >= 1 {
		return fmt.Errorf("erosion: evaporation rate must be in (0, 1), got %f", s.EvaporationRate)
	}
	if s.Gravity <= 0 {
		return fmt.Errorf("erosion: gravity must be positive, got %f", s.Gravity)
	}
	if s.InitialWaterVolume <= 0 {
		return fmt.Errorf("erosion: initial water volume must be positive, got %f", s.InitialWaterVolume)
	}
	if s.InitialSpeed < 0 {
		return fmt.Errorf("erosion: initial speed must be non-negative, got %f", s.InitialSpeed)
	}
	return nil
}
