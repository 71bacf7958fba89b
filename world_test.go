package flicker

import (
	"math"
	"testing"
)

func TestResolvBodyLandsOnSolid(t *testing.T) {
	w := NewResolvWorld(320, 240, 16, 16)
	w.AddSolid(0, 200, 320, 40)

	b := w.AddBody(40, 100, 16, 16)
	b.Gravity = 900
	b.Node = NewContainer("player")

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}

	if !b.OnGround {
		t.Fatal("body should rest on the solid")
	}
	bottom := b.Object.Y + b.Object.H
	if math.Abs(bottom-200) > 1 {
		t.Errorf("body bottom = %v, want ~200", bottom)
	}
	if b.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, want 0 on ground", b.Velocity.Y)
	}
	if b.Node.X != b.Object.X || b.Node.Y != b.Object.Y {
		t.Error("node position not synced with body")
	}
	if b.Object.Data != b {
		t.Error("resolv object should point back at its body")
	}
}

func TestResolvBodyStopsAtWall(t *testing.T) {
	w := NewResolvWorld(320, 240, 16, 16)
	w.AddSolid(100, 0, 16, 240)

	b := w.AddBody(50, 50, 16, 16)
	b.Velocity.X = 300
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60)
	}
	right := b.Object.X + b.Object.W
	if right > 100+1 {
		t.Errorf("body right edge = %v, passed the wall at 100", right)
	}
	if b.Velocity.X != 0 {
		t.Errorf("Velocity.X = %v, want 0 after contact", b.Velocity.X)
	}
}

func TestResolvRemoveBody(t *testing.T) {
	w := NewResolvWorld(320, 240, 16, 16)
	a := w.AddBody(0, 0, 8, 8)
	b := w.AddBody(50, 0, 8, 8)

	w.RemoveBody(a)
	w.Step(0.1)
	bodies := w.Bodies()
	if len(bodies) != 1 || bodies[0] != b {
		t.Fatalf("bodies = %v", bodies)
	}
	if a.Object.Data != nil {
		t.Error("removed body should be unlinked from its object")
	}
}

func TestSceneStepsResolvWorld(t *testing.T) {
	s := NewScene(DefaultSceneConfig())
	w := NewResolvWorld(320, 240, 16, 16)
	b := w.AddBody(0, 0, 8, 8)
	b.Velocity.X = 10
	s.SetWorld(w)

	if err := s.Update(0.5); err != nil {
		t.Fatal(err)
	}
	assertNear(t, "x", b.Object.X, 5)
}
