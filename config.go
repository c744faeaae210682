package roamterrain

import "fmt"

// Config tunes the split-merge engine's triangle budget and the quality
// controller's feedback response. It is a plain literal struct with no
// env/flag binding — callers construct it directly and pass it to New.
type Config struct {
	// TargetPolygonCount is the number of live triangles the quality
	// controller steers toward. Default 10000 if zero.
	TargetPolygonCount int

	// PoolCapacity is the capacity the caller intends for the BinTriPool
	// passed to New. The engine itself is bounded by that pool's own
	// Capacity; this field is not checked against it. At least 4x
	// TargetPolygonCount is recommended, to leave room for internal
	// (non-leaf) nodes and in-flight refinement.
	PoolCapacity int

	// MaxLevels caps bintree depth (and therefore variance tree depth).
	// Default 16 if zero.
	MaxLevels int

	// QualityGain is the multiplicative adjustment constant applied per
	// frame by the quality controller. Default 0.05 if zero.
	QualityGain float64

	// QualityDeadBand is the fractional distance from TargetPolygonCount
	// within which the quality constant is left untouched. Default 0.05
	// (i.e. +-5%) if zero.
	QualityDeadBand float64

	// SaturationCutoff is the fraction of the pool's capacity at which splits
	// are refused regardless of metric, guarding against allocation
	// failure dominating a frame. Default 0.9 if zero.
	SaturationCutoff float64

	// InitialQuality seeds the quality constant before the first frame.
	// Default 1.0 if zero.
	InitialQuality float64
}

// withDefaults returns a copy of c with zero-valued fields replaced by
// their defaults.
func (c Config) withDefaults() Config {
	if c.TargetPolygonCount == 0 {
		c.TargetPolygonCount = 10000
	}
	if c.MaxLevels == 0 {
		c.MaxLevels = 16
	}
	if c.QualityGain == 0 {
		c.QualityGain = 0.05
	}
	if c.QualityDeadBand == 0 {
		c.QualityDeadBand = 0.05
	}
	if c.SaturationCutoff == 0 {
		c.SaturationCutoff = 0.9
	}
	if c.InitialQuality == 0 {
		c.InitialQuality = 1.0
	}
	return c
}

// Validate checks Config fields are in range, returning ErrInvalidConfig
// wrapped with the offending field on failure.
func (c Config) Validate() error {
	if c.PoolCapacity <= 0 {
		return fmt.Errorf("%w: PoolCapacity must be > 0", ErrInvalidConfig)
	}
	if c.TargetPolygonCount < 0 {
		return fmt.Errorf("%w: TargetPolygonCount must be >= 0", ErrInvalidConfig)
	}
	if c.MaxLevels < 0 || c.MaxLevels > 30 {
		return fmt.Errorf("%w: MaxLevels must be in [0, 30]", ErrInvalidConfig)
	}
	if c.QualityGain < 0 || c.QualityGain >= 1 {
		return fmt.Errorf("%w: QualityGain must be in [0, 1)", ErrInvalidConfig)
	}
	if c.QualityDeadBand < 0 || c.QualityDeadBand >= 1 {
		return fmt.Errorf("%w: QualityDeadBand must be in [0, 1)", ErrInvalidConfig)
	}
	if c.SaturationCutoff < 0 || c.SaturationCutoff > 1 {
		return fmt.Errorf("%w: SaturationCutoff must be in [0, 1]", ErrInvalidConfig)
	}
	return nil
}
