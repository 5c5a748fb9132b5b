package sway

// actorIDCounter is a plain counter (no atomic — sway is single-threaded).
var actorIDCounter uint32

func nextActorID() uint32 {
	actorIDCounter++
	return actorIDCounter
}

// Actor is the mutable entity the engine animates. A single flat struct is
// used for every target to avoid interface dispatch on the hot path; hosts
// embed an Actor in their own entity types or use it directly.
//
// The engine writes per-frame deltas into the Change* fields each tick.
// Integrating those deltas into the base fields is the host's step: call
// [Actor.Advance] once per frame after [Update].
type Actor struct {
	// Identity
	ID   uint32
	Name string

	// Position
	X, Y             float64
	ChangeX, ChangeY float64

	// Rotation, in degrees
	Angle       float64
	ChangeAngle float64

	// Scale
	ScaleX, ScaleY             float64
	ChangeScaleX, ChangeScaleY float64

	// Opacity in [0, 1]
	Alpha       float64
	ChangeAlpha float64

	// Visibility (toggled by blink effects)
	Visible bool

	// Arbitrary named numeric properties (tween targets beyond the
	// well-known fields). Allocated lazily by SetProp.
	Props map[string]float64

	// Metadata
	UserData any
}

// NewActor creates an actor with identity scale, full opacity, and
// visibility enabled.
func NewActor(name string) *Actor {
	return &Actor{
		ID:      nextActorID(),
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
	}
}

// Advance integrates one frame of motion: each Change* delta is added to its
// base field. Alpha is clamped to [0, 1] after integration. The engine never
// calls Advance itself; the host does, once per frame.
func (a *Actor) Advance() {
	a.X += a.ChangeX
	a.Y += a.ChangeY
	a.Angle += a.ChangeAngle
	a.ScaleX += a.ChangeScaleX
	a.ScaleY += a.ChangeScaleY
	a.Alpha = clamp01(a.Alpha + a.ChangeAlpha)
}

// Well-known property names resolved by Prop and SetProp.
const (
	PropX      = "x"
	PropY      = "y"
	PropAngle  = "angle"
	PropScaleX = "scale_x"
	PropScaleY = "scale_y"
	PropAlpha  = "alpha"
)

// Prop returns the named numeric property. Well-known names map to the
// corresponding fields; any other name reads from Props (zero when absent).
func (a *Actor) Prop(name string) float64 {
	switch name {
	case PropX:
		return a.X
	case PropY:
		return a.Y
	case PropAngle:
		return a.Angle
	case PropScaleX:
		return a.ScaleX
	case PropScaleY:
		return a.ScaleY
	case PropAlpha:
		return a.Alpha
	}
	return a.Props[name]
}

// SetProp sets the named numeric property. Well-known names write the
// corresponding fields; any other name writes to Props.
func (a *Actor) SetProp(name string, v float64) {
	switch name {
	case PropX:
		a.X = v
	case PropY:
		a.Y = v
	case PropAngle:
		a.Angle = v
	case PropScaleX:
		a.ScaleX = v
	case PropScaleY:
		a.ScaleY = v
	case PropAlpha:
		a.Alpha = v
	default:
		if a.Props == nil {
			a.Props = make(map[string]float64)
		}
		a.Props[name] = v
	}
}

// Target is what an action is applied to: a single [*Actor] or a [Group].
// Every operation treats both uniformly, acting on each member independently.
type Target interface {
	each(fn func(*Actor))
	contains(a *Actor) bool
}

func (a *Actor) each(fn func(*Actor)) { fn(a) }

func (a *Actor) contains(o *Actor) bool { return a == o }

// Group is an ordered homogeneous collection of actors. A Group may be passed
// anywhere a single actor is accepted; the operation applies to every member.
type Group []*Actor

func (g Group) each(fn func(*Actor)) {
	for _, a := range g {
		fn(a)
	}
}

func (g Group) contains(o *Actor) bool {
	for _, a := range g {
		if a == o {
			return true
		}
	}
	return false
}

// Advance calls [Actor.Advance] on every member.
func (g Group) Advance() {
	for _, a := range g {
		a.Advance()
	}
}

// overlaps reports whether any actor of q is a member of t. A nil q matches
// everything (used by scheduler queries).
func overlaps(t, q Target) bool {
	if q == nil {
		return true
	}
	found := false
	q.each(func(a *Actor) {
		if t.contains(a) {
			found = true
		}
	})
	return found
}
