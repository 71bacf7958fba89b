package flicker

import "github.com/solarlune/resolv"

// World is the optional physics collaborator a scene steps at the start of
// every frame, before timers run.
type World interface {
	Step(dt float64)
}

// TagSolid marks static resolv objects that bodies collide with.
const TagSolid = "solid"

// Body is a kinematic box moved by ResolvWorld. Velocity is in pixels per
// second; Gravity accelerates Velocity.Y. When Node is set its position
// mirrors the body's top-left corner after every step.
type Body struct {
	Removable

	Object   *resolv.Object
	Velocity Vec2
	Gravity  float64
	OnGround bool
	Node     *Node
}

// ResolvWorld is a World backed by a resolv spatial hash. Bodies move one
// axis at a time and stop flush against solids.
type ResolvWorld struct {
	Space  *resolv.Space
	bodies []*Body
}

// NewResolvWorld creates a world covering width x height pixels, hashed into
// cells of cellW x cellH.
func NewResolvWorld(width, height, cellW, cellH int) *ResolvWorld {
	return &ResolvWorld{Space: resolv.NewSpace(width, height, cellW, cellH)}
}

// AddSolid adds a static solid rectangle.
func (w *ResolvWorld) AddSolid(x, y, width, height float64) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, TagSolid)
	w.Space.Add(obj)
	return obj
}

// AddBody adds a moving box and returns its body.
func (w *ResolvWorld) AddBody(x, y, width, height float64, tags ...string) *Body {
	obj := resolv.NewObject(x, y, width, height, tags...)
	w.Space.Add(obj)
	b := &Body{Object: obj}
	obj.Data = b
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody flags b; it leaves the space on the next Step.
func (w *ResolvWorld) RemoveBody(b *Body) {
	b.Remove()
}

// Bodies returns the live bodies. The returned slice MUST NOT be mutated.
func (w *ResolvWorld) Bodies() []*Body {
	return w.bodies
}

// Step integrates gravity and moves every body by its velocity, resolving
// collisions against solids horizontally then vertically.
func (w *ResolvWorld) Step(dt float64) {
	for i := len(w.bodies) - 1; i >= 0; i-- {
		b := w.bodies[i]
		if b.Removed() {
			w.Space.Remove(b.Object)
			b.Object.Data = nil
			w.bodies = removeAt(w.bodies, i)
			continue
		}
		w.moveBody(b, dt)
	}
}

func (w *ResolvWorld) moveBody(b *Body, dt float64) {
	obj := b.Object
	b.Velocity.Y += b.Gravity * dt

	dx := b.Velocity.X * dt
	if dx != 0 {
		if check := obj.Check(dx, 0, TagSolid); check != nil {
			if solids := check.ObjectsByTags(TagSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				b.Velocity.X = 0
			}
		}
		obj.X += dx
	}

	dy := b.Velocity.Y * dt
	b.OnGround = false
	if dy != 0 {
		if check := obj.Check(0, dy, TagSolid); check != nil {
			if solids := check.ObjectsByTags(TagSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
				b.OnGround = b.Velocity.Y > 0
				b.Velocity.Y = 0
			}
		}
		obj.Y += dy
	}

	obj.Update()

	if b.Node != nil {
		b.Node.X = obj.X
		b.Node.Y = obj.Y
	}
}
