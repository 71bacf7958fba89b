package flicker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Director holds the active scene and drives it as an ebiten.Game. Only one
// scene is current at a time; Activate queues the next scene, which takes
// over at the start of the following Update so the outgoing scene always
// finishes its pass.
type Director struct {
	current *Scene
	next    *Scene
	pending bool

	width, height int
	// renderErr holds a Draw failure until the next Update can return it.
	renderErr error
}

// NewDirector creates a director with a fixed logical screen size. A zero
// size follows the window.
func NewDirector(width, height int) *Director {
	return &Director{width: width, height: height}
}

// Activate queues s to become the current scene. Passing nil deactivates the
// current scene without a replacement.
func (d *Director) Activate(s *Scene) {
	d.next = s
	d.pending = true
}

// Scene returns the current scene, or nil.
func (d *Director) Scene() *Scene {
	return d.current
}

// switchScene applies a queued activation.
func (d *Director) switchScene() {
	if !d.pending {
		return
	}
	d.pending = false
	next := d.next
	d.next = nil
	if next == d.current {
		return
	}
	if d.current != nil {
		d.current.deactivate()
	}
	d.current = next
	if next != nil {
		next.activate()
	}
}

// Step applies a queued scene switch and advances the current scene by dt.
func (d *Director) Step(dt float64) error {
	d.switchScene()
	if d.current == nil {
		return nil
	}
	return d.current.Update(dt)
}

// Update implements ebiten.Game. The frame delta is one tick at the current TPS.
func (d *Director) Update() error {
	if err := d.renderErr; err != nil {
		d.renderErr = nil
		return err
	}
	return d.Step(1.0 / float64(ebiten.TPS()))
}

// Draw implements ebiten.Game. It clears screen with the scene background,
// points an EbitenRenderer at screen, and renders the current scene.
func (d *Director) Draw(screen *ebiten.Image) {
	s := d.current
	if s == nil {
		return
	}
	screen.Fill(s.config.Background.RGBA())
	if r, ok := s.renderer.(*EbitenRenderer); ok {
		r.SetTarget(screen)
	}
	if err := s.Render(); err != nil && d.renderErr == nil {
		d.renderErr = err
	}
}

// Layout implements ebiten.Game.
func (d *Director) Layout(outsideWidth, outsideHeight int) (int, int) {
	if d.width > 0 && d.height > 0 {
		return d.width, d.height
	}
	return outsideWidth, outsideHeight
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// TPS overrides the tick rate; zero keeps ebiten's default of 60.
	TPS int
}

// Run opens a window and runs d until the window closes or Update fails.
func Run(d *Director, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		if d.width == 0 && d.height == 0 {
			d.width, d.height = cfg.Width, cfg.Height
		}
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(d)
}
