package sway

import (
	"errors"

	"github.com/tanema/gween/ease"
)

// Curve maps normalized time t ∈ [0, 1] to an intensity factor. Return values
// are used verbatim — negative, zero, greater than one, and non-finite
// results all pass straight through to the wrapped action's SetFactor. A
// panic raised inside a curve propagates out of [Update].
type Curve func(t float64) float64

// LinearCurve is the identity curve: factor ramps 0 → 1 over the duration.
func LinearCurve(t float64) float64 { return t }

// CurveFrom adapts one of gween's easing functions (ease.InOutQuad and
// friends) to a Curve.
func CurveFrom(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// EaseAction wraps exactly one other action and drives that action's factor
// over wall-clock time through a curve: each tick it computes
// t = min(elapsed/duration, 1) and forwards curve(t) via SetFactor.
//
// The wrapper owns the wrapped action's registration (Apply applies both, the
// wrapped action first under a derived tag) but not its completion: when the
// wrapper's duration elapses it marks itself done and fires its own OnStop,
// while the wrapped action continues at curve(1) until its own condition
// fires. Stop, by contrast, stops both.
//
// SetFactor on the wrapper forwards to the wrapped action, so nested wrappers
// compose by forwarding — the outermost curve feeds the chain.
type EaseAction struct {
	baseAction
	wrapped  Action
	duration float64
	curve    Curve
	elapsed  float64
}

// Ease wraps an action with a factor envelope of the given duration in
// seconds. Returns an error when wrapped is nil, duration is not positive, or
// curve is nil.
func Ease(wrapped Action, duration float64, curve Curve) (*EaseAction, error) {
	if wrapped == nil {
		return nil, errors.New("sway: ease requires a wrapped action")
	}
	if duration <= 0 {
		return nil, errors.New("sway: ease duration must be positive")
	}
	if curve == nil {
		return nil, errors.New("sway: ease requires a curve")
	}
	e := &EaseAction{wrapped: wrapped, duration: duration, curve: curve}
	e.initBase(e, nil)
	return e, nil
}

func (e *EaseAction) bind(s *Scheduler, target Target, tag string) {
	if e.applied || e.done {
		return
	}
	if tag == "" {
		tag = DefaultTag
	}
	// The wrapped action registers first so it is ticked before the wrapper
	// each frame, with the factor the wrapper set on the previous frame.
	e.wrapped.bind(s, target, tag+":ease")
	e.baseAction.bind(s, target, tag)
}

func (e *EaseAction) startEffect() {
	e.wrapped.SetFactor(0)
}

func (e *EaseAction) stepEffect(dt float64) {
	e.elapsed += dt
	t := e.elapsed / e.duration
	if t > 1 {
		t = 1
	}
	e.wrapped.SetFactor(e.curve(t))
	if t >= 1 {
		e.complete(nil)
	}
}

func (e *EaseAction) finishEffect() {}

func (e *EaseAction) refreshEffect() {}

// SetFactor forwards to the wrapped action.
func (e *EaseAction) SetFactor(f float64) {
	e.wrapped.SetFactor(f)
}

// Stop stops both the wrapper and the wrapped action, even when the wrapper
// has already completed on its own.
func (e *EaseAction) Stop() {
	e.wrapped.Stop()
	e.baseAction.Stop()
}

// Clone clones the wrapper and the wrapped action together.
func (e *EaseAction) Clone() Action {
	c, err := Ease(e.wrapped.Clone(), e.duration, e.curve)
	if err != nil {
		// The original was validated at construction.
		panic(err.Error())
	}
	c.OnStop = e.OnStop
	return c
}

// Wrapped returns the action the wrapper modulates.
func (e *EaseAction) Wrapped() Action { return e.wrapped }
