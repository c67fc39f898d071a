package scurve

import "math"

// Boundary unit conversions (spec §6/§9). The kernel itself is exclusively
// SI (mm, mm/s, mm/s², mm/s³, rad); these helpers exist only for
// operator-facing tooling that speaks mm/min, mm/min³, or degrees.

// MMPerMinToMMPerSec converts a velocity from mm/min to mm/s.
func MMPerMinToMMPerSec(v float32) float32 { return v / 60.0 }

// MMPerSecToMMPerMin converts a velocity from mm/s to mm/min.
func MMPerSecToMMPerMin(v float32) float32 { return v * 60.0 }

// MMPerMin3ToMMPerSec3 converts a jerk value from mm/min³ to mm/s³.
func MMPerMin3ToMMPerSec3(j float32) float32 { return j / (60.0 * 60.0 * 60.0) }

// MMPerSec3ToMMPerMin3 converts a jerk value from mm/s³ to mm/min³.
func MMPerSec3ToMMPerMin3(j float32) float32 { return j * 60.0 * 60.0 * 60.0 }

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * float32(math.Pi) / 180.0 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 { return rad * 180.0 / float32(math.Pi) }
