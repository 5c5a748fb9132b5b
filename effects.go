package sway

import "math"

// --- Move ---

// MoveAction moves its target at a fixed velocity, in units per frame, until
// its condition fires or a Limit boundary arrests it. Each tick it writes the
// factor-scaled velocity to the actor's ChangeX/ChangeY; the host integrates
// with [Actor.Advance].
type MoveAction struct {
	baseAction
	velocity Vec2

	// Bounds, when non-nil, confines the motion to a rectangle using the
	// configured Behavior. Checked per axis and per group member,
	// independently, so diagonal motion can be arrested on one axis while
	// continuing on the other.
	Bounds   *Bounds
	Behavior Behavior

	// OnBoundary is invoked once per boundary crossing with the affected
	// actor and axis.
	OnBoundary BoundaryFunc

	motion map[*Actor]*memberMotion
}

// MoveUntil creates a move effect with the given velocity (units per frame)
// that runs until cond fires. Use [Forever] for motion that only a boundary
// or an explicit Stop ends.
func MoveUntil(velocity Vec2, cond Condition) *MoveAction {
	m := &MoveAction{velocity: velocity}
	m.initBase(m, cond)
	return m
}

func (m *MoveAction) startEffect() {
	m.motion = make(map[*Actor]*memberMotion)
	m.forEach(func(a *Actor) {
		m.motion[a] = &memberMotion{signX: 1, signY: 1}
	})
	m.stepEffect(0)
}

func (m *MoveAction) stepEffect(float64) {
	m.forEach(func(a *Actor) {
		st := m.motion[a]
		vx := m.velocity.X * m.factor * st.signX
		vy := m.velocity.Y * m.factor * st.signY
		if m.Bounds != nil {
			vx = m.applyAxis(a, "x", &a.X, vx, m.Bounds.MinX, m.Bounds.MaxX, &st.signX, &st.latchX)
			vy = m.applyAxis(a, "y", &a.Y, vy, m.Bounds.MinY, m.Bounds.MaxY, &st.signY, &st.latchY)
		}
		a.ChangeX = vx
		a.ChangeY = vy
	})
}

func (m *MoveAction) finishEffect() {
	m.forEach(func(a *Actor) {
		a.ChangeX = 0
		a.ChangeY = 0
	})
}

func (m *MoveAction) refreshEffect() { m.stepEffect(0) }

func (m *MoveAction) Clone() Action {
	c := MoveUntil(m.velocity, m.cond)
	if m.Bounds != nil {
		b := *m.Bounds
		c.Bounds = &b
	}
	c.Behavior = m.Behavior
	c.OnBoundary = m.OnBoundary
	c.OnStop = m.OnStop
	c.factor = m.factor
	return c
}

// --- Rotate ---

// RotateAction spins its target at a fixed angular velocity, in degrees per
// frame, written to ChangeAngle each tick.
type RotateAction struct {
	baseAction
	omega float64
}

// RotateUntil creates a rotate effect with the given angular velocity
// (degrees per frame) that runs until cond fires.
func RotateUntil(omega float64, cond Condition) *RotateAction {
	r := &RotateAction{omega: omega}
	r.initBase(r, cond)
	return r
}

func (r *RotateAction) startEffect() { r.stepEffect(0) }

func (r *RotateAction) stepEffect(float64) {
	r.forEach(func(a *Actor) {
		a.ChangeAngle = r.omega * r.factor
	})
}

func (r *RotateAction) finishEffect() {
	r.forEach(func(a *Actor) {
		a.ChangeAngle = 0
	})
}

func (r *RotateAction) refreshEffect() { r.stepEffect(0) }

func (r *RotateAction) Clone() Action {
	c := RotateUntil(r.omega, r.cond)
	c.OnStop = r.OnStop
	c.factor = r.factor
	return c
}

// --- Scale ---

// ScaleAction grows or shrinks its target at a fixed per-axis rate per frame,
// written to ChangeScaleX/ChangeScaleY each tick. Pass equal components for
// uniform scaling.
type ScaleAction struct {
	baseAction
	rate Vec2
}

// ScaleUntil creates a scale effect with the given per-axis rate (scale units
// per frame) that runs until cond fires.
func ScaleUntil(rate Vec2, cond Condition) *ScaleAction {
	s := &ScaleAction{rate: rate}
	s.initBase(s, cond)
	return s
}

func (s *ScaleAction) startEffect() { s.stepEffect(0) }

func (s *ScaleAction) stepEffect(float64) {
	s.forEach(func(a *Actor) {
		a.ChangeScaleX = s.rate.X * s.factor
		a.ChangeScaleY = s.rate.Y * s.factor
	})
}

func (s *ScaleAction) finishEffect() {
	s.forEach(func(a *Actor) {
		a.ChangeScaleX = 0
		a.ChangeScaleY = 0
	})
}

func (s *ScaleAction) refreshEffect() { s.stepEffect(0) }

func (s *ScaleAction) Clone() Action {
	c := ScaleUntil(s.rate, s.cond)
	c.OnStop = s.OnStop
	c.factor = s.factor
	return c
}

// --- Fade ---

// FadeAction changes its target's opacity at a fixed rate per frame, written
// to ChangeAlpha each tick. [Actor.Advance] clamps the integrated alpha to
// [0, 1].
type FadeAction struct {
	baseAction
	rate float64
}

// FadeUntil creates a fade effect with the given alpha rate (per frame) that
// runs until cond fires. Negative rates fade out, positive rates fade in.
func FadeUntil(rate float64, cond Condition) *FadeAction {
	f := &FadeAction{rate: rate}
	f.initBase(f, cond)
	return f
}

func (f *FadeAction) startEffect() { f.stepEffect(0) }

func (f *FadeAction) stepEffect(float64) {
	f.forEach(func(a *Actor) {
		a.ChangeAlpha = f.rate * f.factor
	})
}

func (f *FadeAction) finishEffect() {
	f.forEach(func(a *Actor) {
		a.ChangeAlpha = 0
	})
}

func (f *FadeAction) refreshEffect() { f.stepEffect(0) }

func (f *FadeAction) Clone() Action {
	c := FadeUntil(f.rate, f.cond)
	c.OnStop = f.OnStop
	c.factor = f.factor
	return c
}

// --- Blink ---

// BlinkAction toggles its target's visibility every period seconds. The
// factor scales blink frequency: elapsed time accumulates as dt × factor.
// On completion or stop, visibility is restored to true.
type BlinkAction struct {
	baseAction
	period  float64
	elapsed float64
}

// BlinkUntil creates a blink effect toggling visibility each period seconds,
// running until cond fires.
func BlinkUntil(period float64, cond Condition) *BlinkAction {
	b := &BlinkAction{period: period}
	b.initBase(b, cond)
	return b
}

func (b *BlinkAction) startEffect() {
	b.elapsed = 0
	b.forEach(func(a *Actor) {
		a.Visible = true
	})
}

func (b *BlinkAction) stepEffect(dt float64) {
	b.elapsed += dt * b.factor
	// Mod rather than integer conversion so non-finite periods degrade to a
	// steady value instead of undefined behavior.
	visible := math.Mod(b.elapsed, 2*b.period) < b.period
	b.forEach(func(a *Actor) {
		a.Visible = visible
	})
}

func (b *BlinkAction) finishEffect() {
	b.forEach(func(a *Actor) {
		a.Visible = true
	})
}

func (b *BlinkAction) refreshEffect() {}

func (b *BlinkAction) Clone() Action {
	c := BlinkUntil(b.period, b.cond)
	c.OnStop = b.OnStop
	c.factor = b.factor
	return c
}

// --- Delay ---

// DelayAction is a pure wait: it mutates nothing and finishes when its
// condition fires. Useful for sequencing host logic off the same scheduler.
type DelayAction struct {
	baseAction
}

// DelayUntil creates a wait that finishes when cond fires.
func DelayUntil(cond Condition) *DelayAction {
	d := &DelayAction{}
	d.initBase(d, cond)
	return d
}

func (d *DelayAction) startEffect()       {}
func (d *DelayAction) stepEffect(float64) {}
func (d *DelayAction) finishEffect()      {}
func (d *DelayAction) refreshEffect()     {}

func (d *DelayAction) Clone() Action {
	c := DelayUntil(d.cond)
	c.OnStop = d.OnStop
	c.factor = d.factor
	return c
}
