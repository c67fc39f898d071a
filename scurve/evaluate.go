package scurve

// boundaries returns the cumulative phase-end times of profile.
func boundaries(profile *Profile) [7]float32 {
	var b [7]float32
	var acc float32
	for i, t := range profile.T {
		acc += t
		b[i] = acc
	}
	return b
}

// phaseStartVelocities returns the velocity at the start of the constant-
// accel phase, the jerk-down phase, and the cruise/decel-jerk-up phase
// (which is simply v_max), derived from the phase durations and the two
// jerk magnitudes.
func phaseStartVelocities(profile *Profile) (vAccelStart, vJerkDownStart, vMax float32) {
	t1 := profile.T[PhaseJerkUp]
	t2 := profile.T[PhaseAccelConst]

	vAccelStart = profile.VInitial + 0.5*profile.JerkAccel*t1*t1
	vJerkDownStart = vAccelStart + profile.Accel*t2
	vMax = profile.VMax
	return
}

// Velocity returns the commanded velocity at time t within profile (spec
// §4.2). Times before the profile start (t < 0), a nil profile, and an
// invalid profile return 0; times past the end return v_final. Safe to call
// concurrently with any number of readers on the same (read-only) Profile.
func Velocity(profile *Profile, t float32) float32 {
	if profile == nil || !profile.Valid || t < 0 {
		return 0
	}

	b := boundaries(profile)
	vAccelStart, vJerkDownStart, vMax := phaseStartVelocities(profile)

	switch {
	case t <= b[PhaseJerkUp]:
		dt := t
		return profile.VInitial + 0.5*profile.JerkAccel*dt*dt
	case t <= b[PhaseAccelConst]:
		dt := t - b[PhaseJerkUp]
		return vAccelStart + profile.Accel*dt
	case t <= b[PhaseJerkDown]:
		dt := t - b[PhaseAccelConst]
		return vJerkDownStart + profile.Accel*dt - 0.5*profile.JerkAccel*dt*dt
	case t <= b[PhaseCruise]:
		return profile.VMax
	case t <= b[PhaseDecelJerkUp]:
		dt := t - b[PhaseCruise]
		return vMax - 0.5*profile.JerkDecel*dt*dt
	case t <= b[PhaseDecelConst]:
		dt := t - b[PhaseDecelJerkUp]
		vStart := vMax - 0.5*profile.JerkDecel*profile.T[PhaseDecelJerkUp]*profile.T[PhaseDecelJerkUp]
		return vStart - profile.Accel*dt
	case t <= b[PhaseDecelJerkDown]:
		dt := t - b[PhaseDecelConst]
		vStart := vMax - 0.5*profile.JerkDecel*profile.T[PhaseDecelJerkUp]*profile.T[PhaseDecelJerkUp] - profile.Accel*profile.T[PhaseDecelConst]
		return vStart - profile.Accel*dt + 0.5*profile.JerkDecel*dt*dt
	default:
		return profile.VFinal
	}
}

// Acceleration returns the commanded (signed) acceleration at time t within
// profile (spec §4.2). Negative values indicate deceleration. Beyond the
// profile, returns 0.
func Acceleration(profile *Profile, t float32) float32 {
	if profile == nil || !profile.Valid || t < 0 {
		return 0
	}

	b := boundaries(profile)

	switch {
	case t <= b[PhaseJerkUp]:
		return profile.JerkAccel * t
	case t <= b[PhaseAccelConst]:
		return profile.Accel
	case t <= b[PhaseJerkDown]:
		dt := t - b[PhaseAccelConst]
		return profile.Accel - profile.JerkAccel*dt
	case t <= b[PhaseCruise]:
		return 0
	case t <= b[PhaseDecelJerkUp]:
		dt := t - b[PhaseCruise]
		return -profile.JerkDecel * dt
	case t <= b[PhaseDecelConst]:
		return -profile.Accel
	case t <= b[PhaseDecelJerkDown]:
		dt := t - b[PhaseDecelConst]
		return -profile.Accel + profile.JerkDecel*dt
	default:
		return 0
	}
}

// Distance returns the cumulative distance traveled by time t within
// profile (spec §4.2): monotone non-decreasing, clamped to profile.Distance.
func Distance(profile *Profile, t float32) float32 {
	if profile == nil || !profile.Valid || t < 0 {
		return 0
	}

	b := boundaries(profile)
	vAccelStart, vJerkDownStart, vMax := phaseStartVelocities(profile)

	var d float32
	switch {
	case t <= b[PhaseJerkUp]:
		dt := t
		return profile.VInitial*dt + oneSixth*profile.JerkAccel*dt*dt*dt
	case t <= b[PhaseAccelConst]:
		d = profile.D[PhaseJerkUp]
		dt := t - b[PhaseJerkUp]
		return d + vAccelStart*dt + 0.5*profile.Accel*dt*dt
	case t <= b[PhaseJerkDown]:
		d = profile.D[PhaseJerkUp] + profile.D[PhaseAccelConst]
		dt := t - b[PhaseAccelConst]
		return d + vJerkDownStart*dt + 0.5*profile.Accel*dt*dt - oneSixth*profile.JerkAccel*dt*dt*dt
	case t <= b[PhaseCruise]:
		d = profile.D[PhaseJerkUp] + profile.D[PhaseAccelConst] + profile.D[PhaseJerkDown]
		dt := t - b[PhaseJerkDown]
		return d + profile.VMax*dt
	case t <= b[PhaseDecelJerkUp]:
		d = profile.D[PhaseJerkUp] + profile.D[PhaseAccelConst] + profile.D[PhaseJerkDown] + profile.D[PhaseCruise]
		dt := t - b[PhaseCruise]
		return d + vMax*dt - oneSixth*profile.JerkDecel*dt*dt*dt
	case t <= b[PhaseDecelConst]:
		d = profile.D[PhaseJerkUp] + profile.D[PhaseAccelConst] + profile.D[PhaseJerkDown] + profile.D[PhaseCruise] + profile.D[PhaseDecelJerkUp]
		dt := t - b[PhaseDecelJerkUp]
		vStart := vMax - 0.5*profile.JerkDecel*profile.T[PhaseDecelJerkUp]*profile.T[PhaseDecelJerkUp]
		return d + vStart*dt - 0.5*profile.Accel*dt*dt
	case t <= b[PhaseDecelJerkDown]:
		d = profile.D[PhaseJerkUp] + profile.D[PhaseAccelConst] + profile.D[PhaseJerkDown] + profile.D[PhaseCruise] +
			profile.D[PhaseDecelJerkUp] + profile.D[PhaseDecelConst]
		dt := t - b[PhaseDecelConst]
		vStart := vMax - 0.5*profile.JerkDecel*profile.T[PhaseDecelJerkUp]*profile.T[PhaseDecelJerkUp] - profile.Accel*profile.T[PhaseDecelConst]
		return d + vStart*dt - 0.5*profile.Accel*dt*dt + oneSixth*profile.JerkDecel*dt*dt*dt
	default:
		return profile.Distance
	}
}

// PhaseAt returns the active phase tag at time t within profile (spec
// §4.2), by cumulative-threshold lookup. Returns PhaseComplete past the
// final boundary.
func PhaseAt(profile *Profile, t float32) Phase {
	if profile == nil || !profile.Valid || t < 0 {
		return PhaseComplete
	}

	b := boundaries(profile)
	for i := range b {
		if t <= b[i] {
			return Phase(i)
		}
	}
	return PhaseComplete
}
