package sway

// Scheduler owns an ordered set of active actions and ticks them once per
// frame. Actions register themselves on Apply (with the default scheduler) or
// via [Scheduler.Start] (with an explicit one).
//
// Like the rest of the engine, a Scheduler is single-threaded by contract:
// Update, Start, Stop, and the queries must all be called from the host's
// frame loop. There are no locks.
type Scheduler struct {
	actions []action

	// snapshot is a reused buffer for the per-tick copy of the active set.
	snapshot []action
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start applies the action to the target under the given tag and registers it
// with this scheduler instead of the default one. Same semantics as
// [Action.Apply] otherwise.
func (s *Scheduler) Start(a Action, target Target, tag string) {
	if a == nil {
		panic("sway: cannot start a nil action")
	}
	a.bind(s, target, tag)
}

// Update ticks every active action by dt seconds, in registration order.
//
// The active set is snapshotted at the start of the call: actions applied
// mid-tick first run on the next call, and an action stopped mid-tick by a
// sibling's callback is skipped if not yet reached but never ticked twice.
// Panics from caller-supplied conditions, curves, or callbacks propagate out
// of Update unrecovered.
func (s *Scheduler) Update(dt float64) {
	s.snapshot = append(s.snapshot[:0], s.actions...)
	for _, a := range s.snapshot {
		if a.Done() {
			continue
		}
		a.Update(dt)
	}
}

// StopAll stops every active action. After it returns the scheduler is empty
// and every previously active action reports Done.
func (s *Scheduler) StopAll() {
	s.snapshot = append(s.snapshot[:0], s.actions...)
	for _, a := range s.snapshot {
		a.Stop()
	}
}

// Clear stops every active action and resets auxiliary engine-wide state
// (the registered debug sink). Use it for test isolation and teardown.
func (s *Scheduler) Clear() {
	s.StopAll()
	s.actions = s.actions[:0]
	SetDebugSink(nil)
}

// Len returns the number of currently active actions.
func (s *Scheduler) Len() int {
	return len(s.actions)
}

// ActionsFor returns the active actions matching both filters. A nil target
// matches every target; for a non-nil target, an action matches when any
// queried actor is a member of the action's target. An empty tag matches
// every tag.
func (s *Scheduler) ActionsFor(target Target, tag string) []Action {
	var out []Action
	for _, a := range s.actions {
		if tag != "" && a.Tag() != tag {
			continue
		}
		if !overlaps(a.Target(), target) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *Scheduler) add(a action) {
	s.actions = append(s.actions, a)
}

// remove deletes a from the active set. Uses copy+nil to avoid retaining a
// dangling pointer in the backing array.
func (s *Scheduler) remove(a action) {
	for i, x := range s.actions {
		if x == a {
			copy(s.actions[i:], s.actions[i+1:])
			s.actions[len(s.actions)-1] = nil
			s.actions = s.actions[:len(s.actions)-1]
			return
		}
	}
}

// defaultScheduler backs the package-level functions and Action.Apply.
var defaultScheduler = NewScheduler()

// Update ticks the default scheduler. Hosts call it once per frame with the
// frame's delta time in seconds.
func Update(dt float64) {
	defaultScheduler.Update(dt)
}

// StopAll stops every action on the default scheduler.
func StopAll() {
	defaultScheduler.StopAll()
}

// Clear stops every action on the default scheduler and resets auxiliary
// engine-wide state.
func Clear() {
	defaultScheduler.Clear()
}

// Len returns the number of active actions on the default scheduler.
func Len() int {
	return defaultScheduler.Len()
}

// ActionsFor queries the default scheduler. See [Scheduler.ActionsFor].
func ActionsFor(target Target, tag string) []Action {
	return defaultScheduler.ActionsFor(target, tag)
}
