// Package sway is a conditional action and animation engine for per-frame
// game loops.
//
// Sway drives time-varying mutations — position, rotation, scale, opacity,
// arbitrary numeric properties — on externally owned actors, using
// declarative conditions rather than fixed durations to decide when an
// effect stops.
//
// # Quick start
//
// Create an actor, apply an effect, and tick the engine once per frame:
//
//	hero := sway.NewActor("hero")
//
//	move := sway.MoveUntil(sway.Vec2{X: 3, Y: 0}, sway.Duration(2))
//	move.Apply(hero, "walk")
//
//	// each frame:
//	sway.Update(dt)   // engine writes hero.ChangeX/ChangeY
//	hero.Advance()    // host integrates the deltas
//
// Effects write per-frame deltas into the actor's Change* fields; the host
// integrates them with [Actor.Advance]. A [Group] may be passed anywhere a
// single actor is accepted.
//
// # Conditions
//
// Every effect runs until its [Condition] fires: [Duration] for elapsed
// update time, [Forever] for effects ended by a boundary or an explicit
// Stop, or any caller-supplied predicate. The condition's [Result] payload is
// handed to the action's OnStop callback.
//
// # Key features
//
// Bounded movement with limit/bounce/wrap boundary response, factor scaling
// of any effect's intensity at runtime, easing envelopes over any action via
// [Ease] (curves from [gween]'s catalog through [CurveFrom]), property tweens
// via [TweenUntil], constant-speed path following with heading alignment via
// [FollowPathUntil], and a snapshot-per-tick [Scheduler] that tolerates
// actions stopping siblings mid-frame.
//
// Sway is single-threaded by contract: drive it from the host's frame loop.
//
// [gween]: https://github.com/tanema/gween
package sway
