package sway

import (
	"errors"
	"math"
	"sort"
)

// arcSamples is the fixed resolution of the arc-length table. The constant
// speed guarantee holds within the spacing error of this sampling.
const arcSamples = 256

// PathAction moves its target along a curve at constant linear speed. Two
// control points make a straight segment; three or more are treated as a
// single smooth Bézier curve (de Casteljau evaluation, covering the quadratic
// and cubic family).
//
// Unlike the velocity effects, the follower writes position directly — it
// owns the trajectory, and the host's Advance step contributes nothing to it.
// Each tick advances the covered arc length by speed × dt × factor and maps
// the new distance back to a curve parameter through an arc-length table
// built once at apply time, so traversal speed is constant regardless of
// control point spacing.
type PathAction struct {
	baseAction
	points []Vec2
	speed  float64

	// RotateWithPath aligns the actor's Angle to the curve tangent at the
	// current parameter, in degrees, plus RotationOffset. The offset is
	// added as-is — large and negative offsets are not wrapped into any
	// canonical range.
	RotateWithPath bool
	RotationOffset float64

	distance float64
	total    float64
	table    []float64
	scratch  []Vec2
}

// FollowPathUntil creates a follower along points at the given speed in units
// per second. It returns an error when fewer than 2 control points are given.
//
// When cond is nil the action completes on reaching the end of the path; pass
// [Forever] to hold position at the end until stopped, or any other condition
// to finish early.
func FollowPathUntil(points []Vec2, speed float64, cond Condition) (*PathAction, error) {
	if len(points) < 2 {
		return nil, errors.New("sway: a path requires at least 2 control points")
	}
	p := &PathAction{
		points: append([]Vec2(nil), points...),
		speed:  speed,
	}
	p.initBase(p, cond)
	return p, nil
}

// AtEnd is a Condition that fires once the follower has covered the full arc
// length of its path. It can be handed to other actions to synchronize them
// with the path's completion.
func (p *PathAction) AtEnd(float64) *Result {
	if p.table != nil && p.distance >= p.total {
		return &Result{Payload: p.total}
	}
	return nil
}

func (p *PathAction) startEffect() {
	p.buildTable()
	p.distance = 0
	p.place(0)
}

func (p *PathAction) stepEffect(dt float64) {
	p.distance += p.speed * dt * p.factor
	if p.distance < 0 {
		p.distance = 0
	}
	end := p.distance >= p.total
	if end {
		p.distance = p.total
	}
	p.place(p.paramAt(p.distance))
	if end && p.cond == nil {
		p.complete(p.total)
	}
}

func (p *PathAction) finishEffect() {}

func (p *PathAction) refreshEffect() {}

func (p *PathAction) Clone() Action {
	c, err := FollowPathUntil(p.points, p.speed, p.cond)
	if err != nil {
		// The original was validated at construction.
		panic(err.Error())
	}
	c.RotateWithPath = p.RotateWithPath
	c.RotationOffset = p.RotationOffset
	c.OnStop = p.OnStop
	c.factor = p.factor
	return c
}

// place positions every target actor at parameter u, aligning heading when
// enabled.
func (p *PathAction) place(u float64) {
	pos := p.pointAt(u)
	angle := 0.0
	if p.RotateWithPath {
		angle = p.tangentDegrees(u) + p.RotationOffset
	}
	p.forEach(func(a *Actor) {
		a.X = pos.X
		a.Y = pos.Y
		if p.RotateWithPath {
			a.Angle = angle
		}
	})
}

// pointAt evaluates the curve at u ∈ [0, 1] with de Casteljau's algorithm.
func (p *PathAction) pointAt(u float64) Vec2 {
	n := len(p.points)
	if n == 2 {
		a, b := p.points[0], p.points[1]
		return Vec2{a.X + (b.X-a.X)*u, a.Y + (b.Y-a.Y)*u}
	}
	if cap(p.scratch) < n {
		p.scratch = make([]Vec2, n)
	}
	buf := p.scratch[:n]
	copy(buf, p.points)
	for k := n - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			buf[i].X += (buf[i+1].X - buf[i].X) * u
			buf[i].Y += (buf[i+1].Y - buf[i].Y) * u
		}
	}
	return buf[0]
}

// tangentDegrees returns the heading of the curve at u, from a central
// difference clamped to the parameter range.
func (p *PathAction) tangentDegrees(u float64) float64 {
	const eps = 1e-4
	u0, u1 := u-eps, u+eps
	if u0 < 0 {
		u0 = 0
	}
	if u1 > 1 {
		u1 = 1
	}
	a, b := p.pointAt(u0), p.pointAt(u1)
	return headingDegrees(b.X-a.X, b.Y-a.Y)
}

// buildTable samples the curve at fixed parameter steps and accumulates
// segment lengths into a parameter → distance table.
func (p *PathAction) buildTable() {
	p.table = make([]float64, arcSamples+1)
	prev := p.pointAt(0)
	for i := 1; i <= arcSamples; i++ {
		pt := p.pointAt(float64(i) / arcSamples)
		dx, dy := pt.X-prev.X, pt.Y-prev.Y
		p.table[i] = p.table[i-1] + math.Hypot(dx, dy)
		prev = pt
	}
	p.total = p.table[arcSamples]
}

// paramAt inverts the arc-length table: the parameter at which the covered
// distance equals d, with linear interpolation between samples.
func (p *PathAction) paramAt(d float64) float64 {
	if d <= 0 {
		return 0
	}
	if d >= p.total {
		return 1
	}
	i := sort.SearchFloat64s(p.table, d)
	// table[i-1] < d <= table[i]
	lo, hi := p.table[i-1], p.table[i]
	frac := 0.0
	if hi > lo {
		frac = (d - lo) / (hi - lo)
	}
	return (float64(i-1) + frac) / arcSamples
}
