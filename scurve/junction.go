package scurve

import "github.com/orsinium-labs/tinymath"

// transitionDt is the fixed sampling interval the reference uses when
// checking whether a junction's acceleration change is achievable within
// the jerk budget (spec §4.3 "Transition validation").
const transitionDt float32 = 0.1

// OptimizeJunction computes the jerk-aware cornering velocity and, when
// enabled, a blending radius for the junction between current and next
// (spec §4.3). It returns false if junction, current, or next is nil.
func OptimizeJunction(junction *Junction, settings *Settings, current, next *Move) bool {
	if junction == nil || settings == nil || current == nil || next == nil {
		return false
	}

	snap := settings.snapshot()

	baseJerk := snap.jerkXY
	if snap.adaptiveEnable {
		shortMove := current.Millimeters < 1.0 || next.Millimeters < 1.0
		longSmooth := current.Millimeters > 5.0 && next.Millimeters > 5.0 && junction.Angle > snap.junctionAngleThreshold
		switch {
		case shortMove:
			baseJerk *= 0.7
		case longSmooth:
			baseJerk *= 1.3
		}
	}

	jerkLimit := baseJerk * snap.jerkMultiplier

	vIn := tinymath.Sqrt(current.EntrySpeedSqr)
	vOut := tinymath.Sqrt(next.MaxEntrySpeedSqr)
	optimal := junctionVelocityLimit(junction.Angle, vIn, vOut, jerkLimit, snap)

	junction.EntryVelocity = vIn
	junction.ExitVelocity = vOut
	junction.JerkLimit = jerkLimit
	junction.OptimalVelocity = optimal

	if snap.pathBlendingEnable && optimal >= snap.pathBlendingMinVelocity && junction.Angle > quarterPi {
		radius := blendRadius(current.Millimeters, next.Millimeters, optimal, junction.Angle, snap)
		if radius > blendRadiusTolerance {
			junction.BlendEnabled = true
			junction.BlendRadius = radius
		} else {
			junction.BlendEnabled = false
			junction.BlendRadius = 0
		}
	} else {
		junction.BlendEnabled = false
		junction.BlendRadius = 0
	}

	return true
}

const (
	quarterPi           float32 = 0.7853982 // pi/4
	blendRadiusTolerance float32 = 1e-3
	minVelocityFloor     float32 = 5.0 // floor applied when adaptive jerk is disabled
)

// junctionVelocityLimit computes the optimal cornering velocity (spec
// §4.3 step 3).
func junctionVelocityLimit(angle, vIn, vOut, jerkLimit float32, snap snapshot) float32 {
	base := tinymath.Min(vIn, vOut) * snap.junctionVelocityFactor

	if angle < snap.junctionAngleThreshold {
		base *= 0.5 + 0.5*angle/snap.junctionAngleThreshold
	}

	jerkCap := tinymath.Sqrt(jerkLimit * snap.junctionJerkMultiplier * snap.pathBlendingTolerance)
	limit := tinymath.Min(base, jerkCap)

	floor := snap.minJerkVelocity
	if !snap.adaptiveEnable {
		floor = minVelocityFloor
	}
	if limit < floor {
		limit = floor
	}
	return limit
}

// blendRadius returns the smallest of the four constraints spec §4.3.1
// names: a fraction of the shorter segment, the jerk-derived radius, the
// chord-deviation radius, and the configured cap.
func blendRadius(currentMM, nextMM, velocity, angle float32, snap snapshot) float32 {
	shorter := tinymath.Min(currentMM, nextMM)
	geometric := 0.25 * shorter

	jerkLimited := snap.jerkXY * snap.pathBlendingJerkFactor
	var jerkRadius float32
	if jerkLimited > 0 {
		jerkRadius = (velocity * velocity) / jerkLimited
	}

	chordRadius := snap.pathBlendingRadius
	if s := tinymath.Sin(angle / 2); s > 0 {
		chordRadius = snap.pathBlendingTolerance / s
	}

	radius := tinymath.Min(geometric, jerkRadius)
	radius = tinymath.Min(radius, chordRadius)
	radius = tinymath.Min(radius, snap.pathBlendingRadius)
	return radius
}

// ValidateTransition reports whether the acceleration step from aCurr to
// aNext across the fixed sampling interval is achievable within jerkLimit
// (spec §4.3 "Transition validation").
func ValidateTransition(aCurr, aNext, jerkLimit float32) bool {
	delta := aNext - aCurr
	if delta < 0 {
		delta = -delta
	}
	return delta/transitionDt <= jerkLimit
}
