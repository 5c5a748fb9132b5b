package sway

import "math"

// Vec2 is a 2D vector used for positions, velocities, scale rates, and path
// control points throughout the API.
type Vec2 struct {
	X, Y float64
}

// DefaultTag is the tag assigned to an action when Apply is called with an
// empty tag string.
const DefaultTag = "global"

// clamp01 clamps v to the [0, 1] opacity range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// headingDegrees returns the direction of (dx, dy) in degrees, measured
// counter-clockwise from the positive X axis.
func headingDegrees(dx, dy float64) float64 {
	return math.Atan2(dy, dx) * 180 / math.Pi
}
