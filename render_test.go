package flicker

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTextureCache(t *testing.T) {
	c := NewTextureCache()
	img := ebiten.NewImage(4, 4)
	c.Add("dot", img)
	if got, ok := c.Get("dot"); !ok || got != img {
		t.Error("Get did not return the added image")
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get should report missing textures")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestTextureCacheLoadPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	c := NewTextureCache()
	if err := c.Load("tiny", &buf); err != nil {
		t.Fatal(err)
	}
	img, ok := c.Get("tiny")
	if !ok {
		t.Fatal("loaded texture missing")
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}

	if err := c.Load("junk", bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected decode error")
	}
}

func TestEbitenRendererNeedsTarget(t *testing.T) {
	r := NewEbitenRenderer(nil)
	if err := r.Render(NewContainer("stage")); !errors.Is(err, errNoTarget) {
		t.Errorf("err = %v, want errNoTarget", err)
	}
}

func TestEbitenRendererCountsMissing(t *testing.T) {
	cache := NewTextureCache()
	cache.Add("dot", ebiten.NewImage(2, 2))
	r := NewEbitenRenderer(cache)
	r.SetTarget(ebiten.NewImage(16, 16))

	stage := NewContainer("stage")
	stage.AddChild(NewSprite("a", "dot"))
	stage.AddChild(NewSprite("b", "unknown"))
	hidden := NewSprite("c", "unknown")
	hidden.Visible = false
	stage.AddChild(hidden)

	if err := r.Render(stage); err != nil {
		t.Fatal(err)
	}
	if r.Missing != 1 {
		t.Errorf("Missing = %d, want 1", r.Missing)
	}
}

func TestBlendModeEbiten(t *testing.T) {
	if BlendAdd.EbitenBlend() != ebiten.BlendLighter {
		t.Error("BlendAdd should map to BlendLighter")
	}
	if BlendNormal.EbitenBlend() != ebiten.BlendSourceOver {
		t.Error("BlendNormal should map to BlendSourceOver")
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	if got.A != 127 || got.R != 127 || got.G != 63 || got.B != 0 {
		t.Errorf("RGBA = %v", got)
	}
}
