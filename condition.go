package sway

// Result signals completion of a conditional action. A nil *Result from a
// Condition means "keep running"; a non-nil Result stops the action, and its
// Payload is handed to the action's completion callback.
type Result struct {
	// Payload carries arbitrary completion data for the callback, commonly a
	// small diagnostic record. May be nil.
	Payload any
}

// Condition decides when a conditional action finishes. It is evaluated once
// per tick, after the action's effect has run, and receives that tick's delta
// time so duration-style conditions can accumulate update time rather than
// wall-clock time.
//
// Conditions created by [Duration] carry internal state: create a fresh one
// per action instance rather than sharing a single condition across clones.
type Condition func(dt float64) *Result

// Forever is a condition that never fires. Actions using it run until
// explicitly stopped or arrested by a boundary.
func Forever(float64) *Result { return nil }

// Duration returns a condition that fires once at least seconds of cumulative
// update time has elapsed. Zero and negative durations fire on the very first
// tick. The Result payload is the total elapsed update time in seconds.
func Duration(seconds float64) Condition {
	elapsed := 0.0
	return func(dt float64) *Result {
		elapsed += dt
		if elapsed >= seconds {
			return &Result{Payload: elapsed}
		}
		return nil
	}
}
