package scurve

import "github.com/orsinium-labs/tinymath"

// Named tuning ratios for the tail-optimized deceleration envelope (spec §9
// calls for surfacing magic ratios rather than leaving them as literals).
const (
	aggressiveTailRatio float32 = 0.3
	mildTailRatio       float32 = 0.6
)

// Synthesize fills profile with a seven-phase S-curve trajectory for a move
// of the given distance and kinematic limits, and reports whether the
// result is valid (spec §4.1). It fails — returning false and leaving
// profile.Valid false — when distance, accel, or jerk is non-positive, or
// when the commanded distance cannot fit the chosen accel/decel envelope.
//
// When v_initial or v_final leaves too little room for a full accel/jerk
// ramp, profile.Accel is reduced below the requested accel to the true
// triangular-ramp peak so the commanded velocity never overshoots v_max;
// see the effAccel derivation below.
//
// settings supplies the tail-optimization tuning (min_stop_velocity,
// final_decel_jerk_multiplier, stop_threshold_distance) consulted when
// optimizeTail is true.
func Synthesize(profile *Profile, distance, vInitial, vFinal, vMax, accel, jerk float32, settings *Settings, optimizeTail bool) bool {
	if profile == nil || distance <= 0 || accel <= 0 || jerk <= 0 {
		if profile != nil {
			*profile = Profile{}
		}
		return false
	}

	// Decide the tail-optimization jerk up front: the overshoot guard below
	// needs to know which jerk magnitude the deceleration side will use.
	jerkDecel := jerk
	tailActive := false
	var tailSnap snapshot
	if optimizeTail && settings != nil {
		tailSnap = settings.snapshot()
		if vFinal < tailSnap.minStopVelocity {
			tailActive = true
			jerkDecel = jerk * tailSnap.finalDecelJerkMult
		}
	}

	// A full jerk-up/jerk-down ramp with zero constant-accel dwell changes
	// velocity by accel²/jerk. When that exceeds the room available on
	// either side, clamping the constant-accel segment to zero is not
	// enough — the commanded velocity would still overshoot past v_max
	// mid-ramp. Derive the true triangular-ramp peak acceleration instead,
	// shared by both sides so the evaluators' single Accel field stays
	// consistent with every phase.
	effAccel := accel
	if up := vMax - vInitial; up > 0 {
		if reach := effAccel * effAccel / jerk; reach > up {
			if tri := tinymath.Sqrt(jerk * up); tri < effAccel {
				effAccel = tri
			}
		}
	}
	if down := vMax - vFinal; down > 0 {
		if reach := effAccel * effAccel / jerkDecel; reach > down {
			if tri := tinymath.Sqrt(jerkDecel * down); tri < effAccel {
				effAccel = tri
			}
		}
	}

	*profile = Profile{
		Distance:  distance,
		VInitial:  vInitial,
		VFinal:    vFinal,
		VMax:      vMax,
		Accel:     effAccel,
		JerkAccel: jerk,
		JerkDecel: jerkDecel,
	}

	// Acceleration side: jerk-up, constant-accel, jerk-down.
	tJerk := effAccel / jerk
	profile.T[PhaseJerkUp] = tJerk
	profile.T[PhaseJerkDown] = tJerk

	vAfterJerkUp := vInitial + 0.5*jerk*tJerk*tJerk
	t2 := Constrain((vMax-vAfterJerkUp-0.5*jerk*tJerk*tJerk)/effAccel, 0, maxPhaseDuration)
	profile.T[PhaseAccelConst] = t2

	profile.D[PhaseJerkUp] = vInitial*tJerk + oneSixth*jerk*tJerk*tJerk*tJerk

	vAccelStart := vInitial + 0.5*jerk*tJerk*tJerk
	profile.D[PhaseAccelConst] = vAccelStart*t2 + 0.5*effAccel*t2*t2

	vJerkDownStart := vAccelStart + effAccel*t2
	profile.D[PhaseJerkDown] = vJerkDownStart*tJerk + 0.5*effAccel*tJerk*tJerk - oneSixth*jerk*tJerk*tJerk*tJerk

	// Deceleration side: symmetric by default, shortened further when tail
	// optimization applies.
	tJerkDecel := effAccel / jerkDecel
	t5 := tJerkDecel
	if tailActive {
		remainingAfterAccel := distance - (profile.D[PhaseJerkUp] + profile.D[PhaseAccelConst] + profile.D[PhaseJerkDown])
		ratio := mildTailRatio
		if tailSnap.stopThresholdDistance > 0 && remainingAfterAccel > tailSnap.stopThresholdDistance {
			ratio = aggressiveTailRatio
		}
		t5 = ratio * tJerkDecel
	}
	profile.T[PhaseDecelJerkUp] = t5
	profile.T[PhaseDecelJerkDown] = t5

	t6 := Constrain((vMax-vFinal-jerkDecel*t5*t5)/effAccel, 0, maxPhaseDuration)
	profile.T[PhaseDecelConst] = t6

	profile.D[PhaseDecelJerkUp] = vMax*t5 - oneSixth*jerkDecel*t5*t5*t5

	vAfterDecelJerkUp := vMax - 0.5*jerkDecel*t5*t5
	profile.D[PhaseDecelConst] = vAfterDecelJerkUp*t6 - 0.5*effAccel*t6*t6

	vAfterDecel := vAfterDecelJerkUp - effAccel*t6
	profile.D[PhaseDecelJerkDown] = vAfterDecel*t5 - 0.5*effAccel*t5*t5 + oneSixth*jerkDecel*t5*t5*t5

	// Cruise absorbs whatever distance the accel/decel phases leave.
	accelDecelDistance := profile.D[PhaseJerkUp] + profile.D[PhaseAccelConst] + profile.D[PhaseJerkDown] +
		profile.D[PhaseDecelJerkUp] + profile.D[PhaseDecelConst] + profile.D[PhaseDecelJerkDown]
	dCruise := Constrain(distance-accelDecelDistance, 0, distance)
	profile.D[PhaseCruise] = dCruise
	if vMax > 0 {
		profile.T[PhaseCruise] = dCruise / vMax
	}

	total := profile.TotalDistance()
	profile.Valid = tinymath.Abs(total-distance) < closureTolerance
	profile.CurrentPhase = PhaseJerkUp
	profile.TimeInPhase = 0

	return profile.Valid
}

const oneSixth float32 = 1.0 / 6.0

// maxPhaseDuration bounds the clamp on derived phase durations; no real
// move approaches it, it only guards against pathological inputs producing
// a negative-then-clamped duration from flipping to an unbounded one.
const maxPhaseDuration float32 = 1e6
