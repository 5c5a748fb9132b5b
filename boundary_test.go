package sway

import "testing"

func boundedMove(v Vec2, b Bounds, behavior Behavior) *MoveAction {
	m := MoveUntil(v, Forever)
	m.Bounds = &b
	m.Behavior = behavior
	return m
}

func TestLimitNoOvershoot(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X, a.Y = 195, 100
	m := boundedMove(Vec2{X: 100}, Bounds{0, 0, 200, 200}, Limit)
	s.Start(m, a, "")

	s.Update(0.016)
	a.Advance()

	if a.X != 200 {
		t.Errorf("X = %v, want exactly 200", a.X)
	}
	if a.ChangeX != 0 {
		t.Errorf("ChangeX = %v, want 0", a.ChangeX)
	}
}

func TestLimitNoWiggleAtBoundary(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 200
	m := boundedMove(Vec2{X: 50}, Bounds{0, 0, 200, 200}, Limit)
	s.Start(m, a, "")

	s.Update(0.016)
	if a.ChangeX != 0 {
		t.Fatalf("ChangeX = %v on the very first tick, want 0", a.ChangeX)
	}
	for i := 0; i < 10; i++ {
		s.Update(0.016)
		a.Advance()
	}
	if a.X != 200 {
		t.Errorf("X = %v after resting ticks, want exactly 200", a.X)
	}
}

func TestLimitSnapsFromBeyondBoundary(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 250 // placed outside by the host
	m := boundedMove(Vec2{X: 10}, Bounds{0, 0, 200, 200}, Limit)
	s.Start(m, a, "")

	if a.X != 200 {
		t.Errorf("X = %v, want snapped to 200", a.X)
	}
}

func TestLimitLowerBound(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 3
	m := boundedMove(Vec2{X: -10}, Bounds{0, 0, 200, 200}, Limit)
	s.Start(m, a, "")

	s.Update(0.016)
	a.Advance()
	if a.X != 0 {
		t.Errorf("X = %v, want exactly 0", a.X)
	}
	if a.ChangeX != 0 {
		t.Errorf("ChangeX = %v, want 0", a.ChangeX)
	}
}

func TestLimitAxesAreIndependent(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X, a.Y = 195, 100
	m := boundedMove(Vec2{X: 100, Y: 2}, Bounds{0, 0, 200, 200}, Limit)
	s.Start(m, a, "")

	s.Update(0.016)
	a.Advance()

	if a.X != 200 {
		t.Errorf("X = %v, want arrested at 200", a.X)
	}
	if a.Y != 102 {
		t.Errorf("Y = %v, want 102 (free axis keeps moving)", a.Y)
	}
	if a.ChangeY != 2 {
		t.Errorf("ChangeY = %v, want 2", a.ChangeY)
	}
}

func TestBoundaryCallbackOncePerCrossing(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 195
	m := boundedMove(Vec2{X: 100}, Bounds{0, 0, 200, 200}, Limit)

	var events []string
	m.OnBoundary = func(target *Actor, axis string) {
		if target != a {
			t.Errorf("callback target = %v, want %v", target, a)
		}
		events = append(events, axis)
	}
	s.Start(m, a, "")

	for i := 0; i < 10; i++ {
		s.Update(0.016)
		a.Advance()
	}

	if len(events) != 1 || events[0] != "x" {
		t.Errorf("events = %v, want exactly one %q event", events, "x")
	}
}

func TestBoundaryCallbackReArmsAfterLeaving(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 195
	m := boundedMove(Vec2{X: 100}, Bounds{0, 0, 200, 200}, Limit)

	crossings := 0
	m.OnBoundary = func(*Actor, string) { crossings++ }
	s.Start(m, a, "")

	s.Update(0.016) // arrested, first crossing
	a.Advance()
	a.X = 50 // host teleports the actor back inside
	s.Update(0.016)
	a.Advance()
	for i := 0; i < 5; i++ { // travel back out to the bound
		s.Update(0.016)
		a.Advance()
	}

	if crossings != 2 {
		t.Errorf("crossings = %d, want 2", crossings)
	}
}

func TestBounceInvertsVelocity(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 195
	m := boundedMove(Vec2{X: 10}, Bounds{0, 0, 200, 200}, Bounce)
	s.Start(m, a, "")

	s.Update(0.016)
	if a.ChangeX != -10 {
		t.Fatalf("ChangeX = %v, want -10 after bounce", a.ChangeX)
	}
	a.Advance()

	// Velocity stays inverted on following ticks.
	s.Update(0.016)
	if a.ChangeX != -10 {
		t.Errorf("ChangeX = %v on next tick, want -10", a.ChangeX)
	}
}

func TestBounceRespectsFactor(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 199
	m := boundedMove(Vec2{X: 10}, Bounds{0, 0, 200, 200}, Bounce)
	s.Start(m, a, "")
	m.SetFactor(0.5)

	s.Update(0.016)
	if a.ChangeX != -5 {
		t.Errorf("ChangeX = %v, want -5 (factor-scaled and inverted)", a.ChangeX)
	}
}

func TestWrapTeleportsToOppositeEdge(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 198
	m := boundedMove(Vec2{X: 5}, Bounds{0, 0, 200, 200}, Wrap)
	s.Start(m, a, "")

	s.Update(0.016)
	a.Advance()

	if a.X != 5 {
		t.Errorf("X = %v, want 5 (wrapped to 0, then one frame of motion)", a.X)
	}
	if a.ChangeX != 5 {
		t.Errorf("ChangeX = %v, want velocity preserved", a.ChangeX)
	}
}

func TestWrapLowerEdge(t *testing.T) {
	s := NewScheduler()
	a := NewActor("a")
	a.X = 2
	m := boundedMove(Vec2{X: -5}, Bounds{0, 0, 200, 200}, Wrap)
	s.Start(m, a, "")

	s.Update(0.016)
	a.Advance()

	if a.X != 195 {
		t.Errorf("X = %v, want 195", a.X)
	}
}

func TestBoundedGroupMembersAreIndependent(t *testing.T) {
	s := NewScheduler()
	near, far := NewActor("near"), NewActor("far")
	near.X, far.X = 195, 50
	m := boundedMove(Vec2{X: 100}, Bounds{0, 0, 200, 200}, Limit)
	s.Start(m, Group{near, far}, "")

	s.Update(0.016)
	near.Advance()
	far.Advance()

	if near.X != 200 || near.ChangeX != 0 {
		t.Errorf("near: X = %v, ChangeX = %v, want 200 and 0", near.X, near.ChangeX)
	}
	if far.X != 150 || far.ChangeX != 100 {
		t.Errorf("far: X = %v, ChangeX = %v, want 150 and 100", far.X, far.ChangeX)
	}
}

func TestBounceGroupMembersDivergeIndependently(t *testing.T) {
	s := NewScheduler()
	near, far := NewActor("near"), NewActor("far")
	near.X, far.X = 195, 50
	m := boundedMove(Vec2{X: 10}, Bounds{0, 0, 200, 200}, Bounce)
	s.Start(m, Group{near, far}, "")

	s.Update(0.016)

	if near.ChangeX != -10 {
		t.Errorf("near.ChangeX = %v, want -10", near.ChangeX)
	}
	if far.ChangeX != 10 {
		t.Errorf("far.ChangeX = %v, want 10 (unaffected by sibling's bounce)", far.ChangeX)
	}
}
