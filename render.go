package flicker

import (
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Renderer draws a stage tree. Scene.Render delegates to it once per frame.
type Renderer interface {
	Render(stage *Node) error
}

// TextureCache maps texture names used by nodes and emitter configs to images.
type TextureCache struct {
	images map[string]*ebiten.Image
}

// NewTextureCache creates an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{images: make(map[string]*ebiten.Image)}
}

// Add registers img under name, replacing any previous image.
func (c *TextureCache) Add(name string, img *ebiten.Image) {
	c.images[name] = img
}

// Load decodes an image from r and registers it under name.
func (c *TextureCache) Load(name string, r io.Reader) error {
	img, _, err := ebitenutil.NewImageFromReader(r)
	if err != nil {
		return fmt.Errorf("load texture %q: %w", name, err)
	}
	c.Add(name, img)
	return nil
}

// Get returns the image registered under name.
func (c *TextureCache) Get(name string) (*ebiten.Image, bool) {
	img, ok := c.images[name]
	return img, ok
}

// Len returns the number of registered textures.
func (c *TextureCache) Len() int {
	return len(c.images)
}

var errNoTarget = errors.New("ebiten renderer has no target image")

// EbitenRenderer draws textured nodes onto an ebiten image with their world
// transform, alpha, tint and blend mode. Nodes whose texture is not in the
// cache are skipped and counted in Missing.
type EbitenRenderer struct {
	Textures *TextureCache
	// Missing counts nodes skipped during the last Render.
	Missing int

	target *ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewEbitenRenderer creates a renderer resolving textures through cache.
func NewEbitenRenderer(cache *TextureCache) *EbitenRenderer {
	if cache == nil {
		cache = NewTextureCache()
	}
	return &EbitenRenderer{Textures: cache}
}

// SetTarget sets the image drawn into by the next Render.
func (r *EbitenRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Render draws stage and its descendants in tree order.
func (r *EbitenRenderer) Render(stage *Node) error {
	if r.target == nil {
		return errNoTarget
	}
	r.Missing = 0
	r.draw(stage, identityTransform, 1)
	return nil
}

func (r *EbitenRenderer) draw(n *Node, parent [6]float64, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha

	var w, h float64
	img, ok := r.lookup(n)
	if ok {
		b := img.Bounds()
		w, h = float64(b.Dx()), float64(b.Dy())
	}
	world := multiplyAffine(parent, computeLocalTransform(n, w, h))

	if ok && alpha > 0 {
		op := &r.op
		op.GeoM.Reset()
		op.GeoM.SetElement(0, 0, world[0])
		op.GeoM.SetElement(1, 0, world[1])
		op.GeoM.SetElement(0, 1, world[2])
		op.GeoM.SetElement(1, 1, world[3])
		op.GeoM.SetElement(0, 2, world[4])
		op.GeoM.SetElement(1, 2, world[5])
		op.ColorScale.Reset()
		a := float32(alpha * n.Color.A)
		op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
		op.Blend = n.BlendMode.EbitenBlend()
		r.target.DrawImage(img, op)
	}

	// Children compose with the pivot-free transform of their parent.
	childBase := world
	if ok {
		childBase = multiplyAffine(parent, computeLocalTransform(n, 0, 0))
	}
	for _, child := range n.children {
		r.draw(child, childBase, alpha)
	}
}

func (r *EbitenRenderer) lookup(n *Node) (*ebiten.Image, bool) {
	if n.Texture == "" {
		return nil, false
	}
	img, ok := r.Textures.Get(n.Texture)
	if !ok {
		r.Missing++
	}
	return img, ok
}
