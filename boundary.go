package sway

// Behavior selects how a moving actor responds to reaching its bounds.
type Behavior uint8

const (
	// Limit arrests motion at the boundary: the axis velocity written to the
	// actor becomes zero and the position snaps exactly to the bound, with
	// no overshoot and no oscillation while resting there.
	Limit Behavior = iota
	// Bounce inverts the velocity sign on the crossed axis; position
	// correction is left to the next integration step.
	Bounce
	// Wrap teleports the actor to the opposite edge, preserving velocity.
	Wrap
)

// Bounds is the axis-aligned rectangle a bounded move is confined to.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoundaryFunc is invoked when a boundary event occurs, with the affected
// actor and the axis name ("x" or "y"). It fires exactly once per crossing,
// not once per frame while an actor rests at a bound.
type BoundaryFunc func(target *Actor, axis string)

// memberMotion is the per-actor boundary state of a bounded move: the bounce
// inversion signs and the limit callback latches for each axis.
type memberMotion struct {
	signX, signY   float64
	latchX, latchY bool
}

// applyAxis runs one axis of the boundary check for one actor. It receives
// the actor's position component and the factor-scaled velocity for the axis,
// and returns the velocity that should actually be written. The check
// projects one frame of displacement: a crossing is handled before the host
// ever integrates an out-of-bounds position.
func (m *MoveAction) applyAxis(a *Actor, axis string, pos *float64, v, min, max float64, sign *float64, latch *bool) float64 {
	projected := *pos + v
	switch m.Behavior {
	case Limit:
		if projected < min || projected > max {
			if projected < min {
				*pos = min
			} else {
				*pos = max
			}
			if !*latch {
				*latch = true
				m.boundaryEvent(a, axis)
			}
			return 0
		}
		*latch = false
		return v

	case Bounce:
		if (projected < min && v < 0) || (projected > max && v > 0) {
			*sign = -*sign
			m.boundaryEvent(a, axis)
			return -v
		}
		return v

	case Wrap:
		if projected > max {
			*pos = min
			m.boundaryEvent(a, axis)
		} else if projected < min {
			*pos = max
			m.boundaryEvent(a, axis)
		}
		return v
	}
	return v
}

func (m *MoveAction) boundaryEvent(a *Actor, axis string) {
	debugf("boundary actor=%q axis=%s", a.Name, axis)
	if m.OnBoundary != nil {
		m.OnBoundary(a, axis)
	}
}
