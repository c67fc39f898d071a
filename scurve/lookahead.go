package scurve

import "github.com/orsinium-labs/tinymath"

// Named jerk-scaling ratios for the lookahead pass (spec §4.4 / §9).
const (
	longSmoothJerkScale float32 = 1.2
	sharpCornerJerkScale float32 = 0.8
)

// Analyze walks window's moves and junctions, computing each junction via
// OptimizeJunction, tracking aggregate distance and peak velocity, and
// flagging sharp-corner sequences (spec §4.4). It returns false if window
// or settings is nil, or if fewer than two moves are queued.
func Analyze(window *LookaheadWindow, settings *Settings) bool {
	if window == nil || settings == nil || window.Count < 2 {
		return false
	}

	snap := settings.snapshot()

	var aggregate, peak float32
	sharp := false

	for i := 0; i < window.Count; i++ {
		move := window.Moves[i]
		if move == nil {
			return false
		}
		aggregate += move.Millimeters
		entry := tinymath.Sqrt(move.EntrySpeedSqr)
		if entry > peak {
			peak = entry
		}
	}

	for i := 0; i < window.Count-1; i++ {
		current, next := window.Moves[i], window.Moves[i+1]
		junction := &window.Junctions[i]
		junction.Angle = window.Angles[i]
		if !OptimizeJunction(junction, settings, current, next) {
			return false
		}
		if junction.Angle < snap.junctionAngleThreshold {
			sharp = true
		}
	}

	window.AggregateDistance = aggregate
	window.PeakVelocity = peak
	window.HasSharpCorners = sharp
	return true
}

// Optimize applies the global jerk-limit scaling and block-level path
// blending spec §4.4 describes, using the per-junction data Analyze already
// populated. It returns false if window or settings is nil, or if fewer than
// two moves are queued (Count < 2); it does not check that Analyze has been
// run on window.
func Optimize(window *LookaheadWindow, settings *Settings) bool {
	if window == nil || settings == nil || window.Count < 2 {
		return false
	}
	snap := settings.snapshot()

	var scale float32 = 1.0
	switch {
	case window.AggregateDistance > 10.0 && !window.HasSharpCorners:
		scale = longSmoothJerkScale
	case window.HasSharpCorners:
		scale = sharpCornerJerkScale
	}

	for i := 0; i < window.Count-1; i++ {
		window.Junctions[i].JerkLimit *= scale
	}

	if !snap.pathBlendingEnable {
		return true
	}

	for i := 0; i < window.Count-1; i++ {
		junction := &window.Junctions[i]
		if !junction.BlendEnabled {
			continue
		}
		current, next := window.Moves[i], window.Moves[i+1]
		scaled := junction.OptimalVelocity * snap.pathBlendingJerkFactor
		scaledSqr := scaled * scaled
		current.EntrySpeedSqr = scaledSqr
		next.MaxEntrySpeedSqr = scaledSqr
	}

	return true
}
