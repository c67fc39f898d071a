package scurve

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// S4: a near-collinear junction between two long moves optimizes to a higher
// velocity than a sharp-angle junction with otherwise identical moves.
func TestOptimizeJunction_S4_AngleAffectsVelocity(t *testing.T) {
	c := qt.New(t)
	settings := NewSettings()
	// A wide tolerance lifts the jerk-derived cap above the 5 mm/s floor, so
	// the two angles yield different velocities instead of both flooring.
	settings.Set(ParamBlendTolerance, 1.0)

	current := &Move{Millimeters: 20, EntrySpeedSqr: 2500, MaxEntrySpeedSqr: 2500}
	next := &Move{Millimeters: 20, EntrySpeedSqr: 2500, MaxEntrySpeedSqr: 2500}

	var smooth Junction
	smooth.Angle = 3.0 // near-collinear
	c.Assert(OptimizeJunction(&smooth, settings, current, next), qt.IsTrue)

	var sharp Junction
	sharp.Angle = 0.5 // sharp corner
	c.Assert(OptimizeJunction(&sharp, settings, current, next), qt.IsTrue)

	c.Assert(smooth.OptimalVelocity >= sharp.OptimalVelocity, qt.IsTrue)
}

// S5: path blending enables only past the angle/velocity thresholds and
// never exceeds the configured cap.
func TestOptimizeJunction_S5_BlendRadiusCapped(t *testing.T) {
	c := qt.New(t)
	settings := NewSettings()
	settings.Set(ParamMaxBlendRadius, 0.5)
	// A wide tolerance lifts the optimal velocity (about 12.5 mm/s) past the
	// 10 mm/s blending threshold; the uncapped radius would be about 1 mm.
	settings.Set(ParamBlendTolerance, 1.0)

	current := &Move{Millimeters: 50, EntrySpeedSqr: 10000, MaxEntrySpeedSqr: 10000}
	next := &Move{Millimeters: 50, EntrySpeedSqr: 10000, MaxEntrySpeedSqr: 10000}

	var j Junction
	j.Angle = 3.1
	c.Assert(OptimizeJunction(&j, settings, current, next), qt.IsTrue)

	c.Assert(j.BlendEnabled, qt.IsTrue)
	c.Assert(j.BlendRadius <= 0.5, qt.IsTrue)
}

// S6: a degenerate (nil) input is rejected without side effects.
func TestOptimizeJunction_S6_RejectsNilInputs(t *testing.T) {
	c := qt.New(t)
	settings := NewSettings()
	move := &Move{Millimeters: 10, EntrySpeedSqr: 100, MaxEntrySpeedSqr: 100}
	var j Junction

	c.Assert(OptimizeJunction(nil, settings, move, move), qt.IsFalse)
	c.Assert(OptimizeJunction(&j, nil, move, move), qt.IsFalse)
	c.Assert(OptimizeJunction(&j, settings, nil, move), qt.IsFalse)
	c.Assert(OptimizeJunction(&j, settings, move, nil), qt.IsFalse)
}

func TestJunctionVelocityLimit_RespectsFloor(t *testing.T) {
	c := qt.New(t)
	settings := NewSettings()
	settings.Set(ParamAdaptiveEnable, 0)

	move := &Move{Millimeters: 10, EntrySpeedSqr: 0.01, MaxEntrySpeedSqr: 0.01}
	var j Junction
	j.Angle = 0.1
	c.Assert(OptimizeJunction(&j, settings, move, move), qt.IsTrue)
	c.Assert(j.OptimalVelocity >= minVelocityFloor, qt.IsTrue)
}

func TestValidateTransition(t *testing.T) {
	c := qt.New(t)
	c.Assert(ValidateTransition(0, 50, 1000), qt.IsTrue)
	c.Assert(ValidateTransition(0, 500, 10), qt.IsFalse)
}
