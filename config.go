package treestats

import (
	"fmt"
	"runtime"
)

// MeasureConfig controls how Measure walks a spatial tree.
// Start with [DefaultMeasureConfig] and override the fields you need.
type MeasureConfig struct {
	// Occupation is the per-node capacity assumed by the optimal-tree
	// simulation that BloatFactor is measured against. 0 means use the
	// tree's leaf size (at least 2). Must be 0 or > 1. Default: 0.
	Occupation int

	// Workers controls the number of goroutines counting node overlaps on
	// a level. 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// ObjectSize returns the size of one indexed point, fed into the
	// report's mean object size. Default: 8 bytes per feature.
	ObjectSize func(point []float64) float64
}

// DefaultMeasureConfig returns a MeasureConfig with reasonable defaults.
func DefaultMeasureConfig() MeasureConfig {
	return MeasureConfig{}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *MeasureConfig) error {
	if cfg.Occupation < 0 || cfg.Occupation == 1 {
		return fmt.Errorf("treestats: Occupation must be 0 (auto) or > 1, got %d", cfg.Occupation)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("treestats: Workers must be >= 0 (0 means NumCPU), got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
// The occupation default depends on the tree and is resolved by Measure.
func applyDefaults(cfg *MeasureConfig) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ObjectSize == nil {
		cfg.ObjectSize = func(point []float64) float64 { return float64(8 * len(point)) }
	}
}
