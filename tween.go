package sway

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenAction interpolates a named numeric property from a fixed start value
// to a fixed end value over a fixed duration. Interpolation is backed by
// [gween]; the per-instance Easing function warps the curve (this is distinct
// from the [Ease] wrapper, which modulates another action's factor).
//
// Natural completion is exact-value: at t ≥ 1 the property is set to the
// literal end value regardless of accumulated floating error, including on
// the very first tick when the duration is zero. An external condition firing
// early, or an explicit Stop, leaves the property at its current value.
//
// [gween]: https://github.com/tanema/gween
type TweenAction struct {
	baseAction
	from, to float64
	prop     string
	duration float64

	// Easing warps the interpolation. Defaults to ease.Linear. Set before
	// Apply.
	Easing ease.TweenFunc

	tween *gween.Tween
}

// TweenUntil creates a tween of the named property from from to to over
// duration seconds. A non-positive duration means immediate completion on the
// first tick, not an error. cond may force completion early; pass nil to run
// the full duration.
func TweenUntil(from, to float64, prop string, duration float64, cond Condition) *TweenAction {
	if duration < 0 {
		duration = 0
	}
	t := &TweenAction{from: from, to: to, prop: prop, duration: duration}
	t.initBase(t, cond)
	return t
}

func (t *TweenAction) startEffect() {
	easing := t.Easing
	if easing == nil {
		easing = ease.Linear
	}
	t.tween = gween.New(float32(t.from), float32(t.to), float32(t.duration), easing)
	t.forEach(func(a *Actor) {
		a.SetProp(t.prop, t.from)
	})
}

func (t *TweenAction) stepEffect(dt float64) {
	value, finished := t.tween.Update(float32(dt * t.factor))
	if finished {
		// Snap to the exact end value; the float32 round trip must not leak
		// into the final state.
		t.forEach(func(a *Actor) {
			a.SetProp(t.prop, t.to)
		})
		t.complete(nil)
		return
	}
	v := float64(value)
	t.forEach(func(a *Actor) {
		a.SetProp(t.prop, v)
	})
}

func (t *TweenAction) finishEffect() {}

func (t *TweenAction) refreshEffect() {}

func (t *TweenAction) Clone() Action {
	c := TweenUntil(t.from, t.to, t.prop, t.duration, t.cond)
	c.Easing = t.Easing
	c.OnStop = t.OnStop
	c.factor = t.factor
	return c
}
