package flicker

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

var errNoScreen = errors.New("terminal renderer has no screen")

// TermRenderer plots textured nodes as single cells on a tcell screen. Each
// cell covers CellWidth x CellHeight world pixels. Glyphs maps texture names
// to runes; faded nodes fall back to lighter glyphs.
type TermRenderer struct {
	Screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
	Glyphs     map[string]rune
	Colors     map[string]tcell.Color
	// Background fills the screen before plotting when set.
	Background tcell.Style
	// Plotted counts cells written during the last Render.
	Plotted int
}

// NewTermRenderer creates a renderer for screen with one world pixel per cell
// horizontally and two vertically, roughly matching terminal cell aspect.
func NewTermRenderer(screen tcell.Screen) *TermRenderer {
	return &TermRenderer{
		Screen:     screen,
		CellWidth:  1,
		CellHeight: 2,
		Glyphs:     make(map[string]rune),
		Colors:     make(map[string]tcell.Color),
		Background: tcell.StyleDefault,
	}
}

// Render clears the screen, plots stage and its descendants, and shows the
// result.
func (r *TermRenderer) Render(stage *Node) error {
	if r.Screen == nil {
		return errNoScreen
	}
	r.Screen.Fill(' ', r.Background)
	r.Plotted = 0
	r.plot(stage, identityTransform, 1)
	r.Screen.Show()
	return nil
}

func (r *TermRenderer) plot(n *Node, parent [6]float64, parentAlpha float64) {
	if !n.Visible {
		return
	}
	world := multiplyAffine(parent, computeLocalTransform(n, 0, 0))
	alpha := parentAlpha * n.Alpha

	if n.Texture != "" && alpha > 0 {
		w, h := r.Screen.Size()
		cx := int(world[4] / r.CellWidth)
		cy := int(world[5] / r.CellHeight)
		if cx >= 0 && cy >= 0 && cx < w && cy < h {
			r.Screen.SetContent(cx, cy, r.glyph(n.Texture, alpha), nil, r.style(n.Texture, alpha))
			r.Plotted++
		}
	}

	for _, child := range n.children {
		r.plot(child, world, alpha)
	}
}

func (r *TermRenderer) glyph(texture string, alpha float64) rune {
	switch {
	case alpha < 0.25:
		return '.'
	case alpha < 0.5:
		return ':'
	}
	if g, ok := r.Glyphs[texture]; ok {
		return g
	}
	return '*'
}

func (r *TermRenderer) style(texture string, alpha float64) tcell.Style {
	st := r.Background
	if c, ok := r.Colors[texture]; ok {
		st = st.Foreground(c)
	}
	return st.Dim(alpha < 0.5)
}
