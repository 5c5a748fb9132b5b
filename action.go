package sway

// Action is a scheduled unit of per-frame work. Concrete actions are created
// by the effect constructors ([MoveUntil], [RotateUntil], [TweenUntil],
// [FollowPathUntil], [Ease], and friends); the interface is implemented only
// inside this package.
//
// Lifecycle: created → active (on Apply) → done (on Stop or when the
// condition fires). Done is terminal; a done action is never ticked again and
// cannot be re-applied — use Clone for a fresh instance.
type Action interface {
	// Apply binds the action to a target and tag, runs its one-time setup,
	// and registers it with the default scheduler. An empty tag becomes
	// [DefaultTag]. Applying an already-applied or done action is a no-op.
	Apply(target Target, tag string)

	// Update advances the action by dt seconds: the effect runs, then the
	// completion condition is evaluated. Normally called by the scheduler;
	// hosts driving an action manually may call it directly. No-op while the
	// action is paused, unapplied, or done.
	Update(dt float64)

	// Stop finishes the action immediately: the effect's teardown runs, the
	// action is marked done and removed from its scheduler. Idempotent.
	// Stop does not invoke the completion callback — that fires only when
	// the condition signals completion.
	Stop()

	// Clone returns a fresh, unapplied action with the same configuration
	// but none of the lifecycle or progress state.
	Clone() Action

	// SetFactor scales the effect's base intensity by f, applied immediately
	// to the target's current per-frame deltas when active. The factor is
	// unrestricted: zero, negative, and non-finite values pass through
	// unclamped. Legal before Apply; no-op after done.
	SetFactor(f float64)

	// Done reports whether the action has finished.
	Done() bool

	// Paused reports whether the action is paused.
	Paused() bool

	// SetPaused suspends or resumes ticking. A paused action stays
	// registered but receives no Update and evaluates no condition.
	SetPaused(paused bool)

	// Tag returns the tag the action was applied under ("" before Apply).
	Tag() string

	// Target returns the bound target (nil before Apply).
	Target() Target

	bind(s *Scheduler, target Target, tag string)
}

// action is the full contract a concrete effect satisfies: the public Action
// surface plus the lifecycle hooks the base dispatches to.
type action interface {
	Action
	effectHooks
}

// effectHooks are the per-variant lifecycle hooks. startEffect runs once when
// the action is applied, stepEffect every active tick, finishEffect once on
// completion or stop, and refreshEffect after a factor change while active
// (rewriting the target's current deltas).
type effectHooks interface {
	startEffect()
	stepEffect(dt float64)
	finishEffect()
	refreshEffect()
}

// baseAction carries the state and lifecycle shared by every effect variant.
// Concrete actions embed it and set self to themselves so the base can
// dispatch hook calls dynamically.
type baseAction struct {
	self   action
	target Target
	tag    string
	cond   Condition
	factor float64

	applied bool
	done    bool
	paused  bool

	sched *Scheduler

	// OnStop is invoked exactly once when the condition signals completion,
	// after the effect's teardown and before the action leaves the
	// scheduler. It receives the condition's Result payload. Not invoked on
	// explicit Stop. Panics raised here propagate out of Update.
	OnStop func(payload any)
}

// initBase wires the embedded base to its concrete action. Every constructor
// calls it.
func (b *baseAction) initBase(self action, cond Condition) {
	b.self = self
	b.cond = cond
	b.factor = 1
}

func (b *baseAction) Apply(target Target, tag string) {
	b.self.bind(defaultScheduler, target, tag)
}

func (b *baseAction) bind(s *Scheduler, target Target, tag string) {
	if b.applied || b.done {
		return
	}
	if target == nil {
		panic("sway: cannot apply an action to a nil target")
	}
	if tag == "" {
		tag = DefaultTag
	}
	b.target = target
	b.tag = tag
	b.sched = s
	b.applied = true
	b.self.startEffect()
	if s != nil {
		s.add(b.self)
	}
	debugf("apply tag=%q", tag)
}

func (b *baseAction) Update(dt float64) {
	if !b.applied || b.done || b.paused {
		return
	}
	b.self.stepEffect(dt)
	if b.done {
		// The effect completed itself this tick (e.g. a tween reaching its
		// end value).
		return
	}
	if b.cond == nil {
		return
	}
	if res := b.cond(dt); res != nil {
		b.complete(res.Payload)
	}
}

// complete finishes the action through its condition path: teardown, done,
// callback, removal — in that order.
func (b *baseAction) complete(payload any) {
	if b.done {
		return
	}
	b.self.finishEffect()
	b.done = true
	if b.OnStop != nil {
		b.OnStop(payload)
	}
	if b.sched != nil {
		b.sched.remove(b.self)
	}
	debugf("done tag=%q", b.tag)
}

func (b *baseAction) Stop() {
	if b.done {
		return
	}
	b.done = true
	if b.applied {
		b.self.finishEffect()
	}
	if b.sched != nil {
		b.sched.remove(b.self)
	}
	debugf("stop tag=%q", b.tag)
}

func (b *baseAction) SetFactor(f float64) {
	b.factor = f
	if b.applied && !b.done {
		b.self.refreshEffect()
	}
}

func (b *baseAction) Done() bool { return b.done }

func (b *baseAction) Paused() bool { return b.paused }

func (b *baseAction) SetPaused(paused bool) { b.paused = paused }

func (b *baseAction) Tag() string { return b.tag }

func (b *baseAction) Target() Target { return b.target }

// forEach visits every actor of the bound target.
func (b *baseAction) forEach(fn func(*Actor)) {
	if b.target != nil {
		b.target.each(fn)
	}
}
