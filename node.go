package flicker

import "slices"

// lastNodeID is bumped per node; flicker is single-threaded.
var lastNodeID uint32

// Node is the visual proxy the simulation writes into: a sprite or a
// container in the stage tree. The simulation only sets abstract attributes
// (position, rotation, scale, alpha, texture name); turning them into pixels
// is the job of a Renderer.
type Node struct {
	ID   uint32
	Name string

	Parent   *Node
	children []*Node

	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	// PivotX and PivotY are normalized anchors in [0, 1] relative to the
	// texture size. Particle sprites are centered (0.5, 0.5).
	PivotX float64
	PivotY float64

	Alpha   float64
	Visible bool

	// Texture is a name resolved by the renderer (see TextureCache). An
	// empty texture makes the node a pure container.
	Texture   string
	BlendMode BlendMode
	Color     Color

	UserData any

	disposed bool
}

func newNode(name, texture string, pivot float64) *Node {
	lastNodeID++
	return &Node{
		ID:      lastNodeID,
		Name:    name,
		Texture: texture,
		PivotX:  pivot,
		PivotY:  pivot,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Color:   ColorWhite,
		Visible: true,
	}
}

// NewContainer creates a node with no visual representation.
func NewContainer(name string) *Node {
	return newNode(name, "", 0)
}

// NewSprite creates a node that renders the named texture, anchored at its
// center.
func NewSprite(name, texture string) *Node {
	return newNode(name, texture, 0.5)
}

// AddChild attaches child as the last child of n, detaching it from any
// previous parent. It panics on a nil child or when child is n or one of
// its ancestors.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("flicker: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	for p := n; p != nil; p = p.Parent {
		if p == child {
			panic("flicker: adding child would create a cycle")
		}
	}
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from n. It panics when n is not child's parent.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("flicker: child's parent is not this node")
	}
	n.detach(child)
}

// RemoveFromParent detaches n from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.Parent != nil {
		n.Parent.detach(n)
	}
}

// RemoveChildren detaches every child without disposing them.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
}

// detach drops child from n's children, keeping sibling order.
func (n *Node) detach(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = removeAt(n.children, i)
	}
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Dispose detaches n and marks it and its whole subtree disposed. Tweens
// owned by a disposed node complete without writing.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

// dispose tears down children before their parent.
func (n *Node) dispose() {
	for _, child := range n.children {
		child.dispose()
	}
	n.children = nil
	n.disposed = true
	n.ID = 0
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed reports whether Dispose was called on n or an ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
