package scurve

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func buildProfile(c *qt.C, distance, vInitial, vFinal, vMax, accel, jerk float32) Profile {
	var p Profile
	ok := Synthesize(&p, distance, vInitial, vFinal, vMax, accel, jerk, NewSettings(), false)
	c.Assert(ok, qt.IsTrue)
	return p
}

func TestVelocity_EndpointsAndMonotonicity(t *testing.T) {
	c := qt.New(t)
	p := buildProfile(c, 200, 0, 0, 50, 500, 5000)

	c.Assert(float64(Velocity(&p, 0)), qt.CloseTo(0, 1e-3))
	c.Assert(Velocity(&p, -1), qt.Equals, float32(0))
	c.Assert(float64(Velocity(&p, p.TotalTime()+10)), qt.CloseTo(float64(p.VFinal), 1e-3))

	var prev float32 = -1
	total := p.TotalTime()
	steps := 50
	for i := 0; i <= steps; i++ {
		tt := total * float32(i) / float32(steps)
		v := Velocity(&p, tt)
		c.Assert(v >= prev-1e-2, qt.IsTrue)
		prev = v
	}
}

func TestVelocity_NilAndInvalidProfile(t *testing.T) {
	c := qt.New(t)
	c.Assert(Velocity(nil, 1), qt.Equals, float32(0))

	var invalid Profile
	c.Assert(Velocity(&invalid, 1), qt.Equals, float32(0))
}

func TestDistance_MonotoneAndClamped(t *testing.T) {
	c := qt.New(t)
	p := buildProfile(c, 150, 0, 0, 40, 400, 4000)

	var prev float32
	total := p.TotalTime()
	steps := 60
	for i := 0; i <= steps; i++ {
		tt := total * float32(i) / float32(steps)
		d := Distance(&p, tt)
		c.Assert(d >= prev-1e-2, qt.IsTrue)
		prev = d
	}
	c.Assert(float64(Distance(&p, total+5)), qt.CloseTo(float64(p.Distance), 1e-2))
}

func TestPhaseAt_CoversAllPhases(t *testing.T) {
	c := qt.New(t)
	p := buildProfile(c, 200, 0, 0, 50, 500, 5000)

	b := boundaries(&p)
	c.Assert(PhaseAt(&p, 0), qt.Equals, PhaseJerkUp)
	c.Assert(PhaseAt(&p, b[PhaseCruise]-0.001), qt.Equals, PhaseCruise)
	c.Assert(PhaseAt(&p, p.TotalTime()+1), qt.Equals, PhaseComplete)
}

// Regression for a profile whose v_initial leaves too little room for a
// full accel/jerk ramp: the velocity must stay within v_max, not overshoot
// mid-ramp before snapping back down at the cruise boundary.
func TestVelocity_NoOvershootWhenRampExceedsAvailableRoom(t *testing.T) {
	c := qt.New(t)
	p := buildProfile(c, 20, 30, 0, 50, 500, 5000)

	total := p.TotalTime()
	steps := 200
	for i := 0; i <= steps; i++ {
		tt := total * float32(i) / float32(steps)
		v := Velocity(&p, tt)
		c.Assert(v <= 50+1e-2, qt.IsTrue)
	}
}

func TestAcceleration_ZeroDuringCruise(t *testing.T) {
	c := qt.New(t)
	p := buildProfile(c, 200, 0, 0, 50, 500, 5000)

	b := boundaries(&p)
	mid := (b[PhaseJerkDown] + b[PhaseCruise]) / 2
	c.Assert(float64(Acceleration(&p, mid)), qt.CloseTo(0, 1e-3))
}
