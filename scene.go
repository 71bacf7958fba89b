package flicker

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

// Object is a generic scene member updated once per frame. Objects request
// removal with Remove; the scene drops them during its next objects pass.
type Object interface {
	Update(dt float64)
	Remove()
	Removed() bool
}

// Removable is an embeddable soft-delete flag implementing the removal half
// of Object.
type Removable struct {
	removed bool
}

// Remove marks the owner for removal on the next scene pass.
func (r *Removable) Remove() {
	r.removed = true
}

// Removed reports whether Remove was called.
func (r *Removable) Removed() bool {
	return r.removed
}

// SceneConfig holds per-scene settings.
type SceneConfig struct {
	Name string
	// GlobalScale multiplies particle displacement for emitters created by
	// the scene.
	GlobalScale float64
	// Background is the clear color used by the director before rendering.
	Background Color
	Debug      bool
}

// DefaultSceneConfig returns the default scene settings.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Name:        "scene",
		GlobalScale: 1,
		Background:  Color{0, 0, 0, 1},
	}
}

// Scene is the per-frame orchestrator for one screen or level. It owns the
// stage container and four collections (timers, emitters, tweens, objects)
// that are mutated while being iterated: additions append, removals are
// flags consumed by descending-index pruning passes.
type Scene struct {
	id     uuid.UUID
	config SceneConfig
	debug  bool

	stage    *Node
	world    World
	renderer Renderer
	audio    Audio
	sink     EventSink

	pool  *ParticlePool
	clock Clock

	objects  []Object
	timers   []*Timer
	tweens   []*Tween
	emitters []*Emitter

	stats frameStats

	// OnActivate and OnDeactivate run when a Director switches scenes.
	OnActivate   func(*Scene)
	OnDeactivate func(*Scene)
}

// NewScene creates a scene with an empty stage and its own particle pool.
func NewScene(cfg SceneConfig) *Scene {
	if cfg.Name == "" {
		cfg.Name = "scene"
	}
	if cfg.GlobalScale == 0 {
		cfg.GlobalScale = 1
	}
	s := &Scene{
		id:     uuid.New(),
		config: cfg,
		stage:  NewContainer(cfg.Name),
		pool:   NewParticlePool(),
	}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	return s
}

// Update runs one frame pass in fixed order: world, timers, emitters,
// tweens, objects. Each sub-pass completes before the next begins and
// iterates in descending index order, so dropping the current element
// never skips or repeats a neighbor. An emitter configuration error aborts
// the pass.
func (s *Scene) Update(dt float64) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.stats = frameStats{}
	}

	s.clock.Advance(dt)

	if s.world != nil {
		s.world.Step(dt)
	}

	for i := len(s.timers) - 1; i >= 0; i-- {
		t := s.timers[i]
		if t.Canceled() {
			s.timers = removeAt(s.timers, i)
			continue
		}
		if t.Delta() < 0 {
			continue
		}
		if t.Callback != nil {
			t.Callback()
		}
		s.timers = removeAt(s.timers, i)
		s.stats.timersFired++
		s.publish(EventTimerFired, t)
	}

	for i := len(s.emitters) - 1; i >= 0; i-- {
		e := s.emitters[i]
		if err := e.Update(dt); err != nil {
			return fmt.Errorf("update emitter %q: %w", e.PoolName, err)
		}
		s.stats.particles += e.Len()
		if e.Removed() {
			e.Clear()
			s.emitters = removeAt(s.emitters, i)
			s.publish(EventEmitterRemoved, e)
		}
	}

	fdt := float32(dt)
	for i := len(s.tweens) - 1; i >= 0; i-- {
		tw := s.tweens[i]
		tw.Update(fdt)
		if tw.Complete() {
			s.tweens = removeAt(s.tweens, i)
			s.publish(EventTweenCompleted, tw)
		}
	}

	for i := len(s.objects) - 1; i >= 0; i-- {
		o := s.objects[i]
		o.Update(dt)
		if o.Removed() {
			s.objects = removeAt(s.objects, i)
			s.publish(EventObjectRemoved, o)
		}
	}

	if s.debug {
		s.stats.updateTime = time.Since(t0)
		s.debugLog()
	}
	return nil
}

// Render delegates drawing of the stage to the attached renderer.
// Without a renderer it does nothing.
func (s *Scene) Render() error {
	if s.renderer == nil {
		return nil
	}
	if err := s.renderer.Render(s.stage); err != nil {
		return fmt.Errorf("render scene %q: %w", s.config.Name, err)
	}
	return nil
}

// Pause mutes the attached audio.
func (s *Scene) Pause() {
	if s.audio != nil {
		s.audio.MuteAll()
	}
}

// Resume unmutes the attached audio.
func (s *Scene) Resume() {
	if s.audio != nil {
		s.audio.UnmuteAll()
	}
}

// --- Objects ---

// AddObject appends o to the objects collection.
func (s *Scene) AddObject(o Object) {
	s.objects = append(s.objects, o)
}

// RemoveObject flags o for removal on the next objects pass.
func (s *Scene) RemoveObject(o Object) {
	o.Remove()
}

// --- Emitters ---

// NewEmitter creates an emitter sharing the scene's particle pool and global
// scale, with its sprites attached to the stage, and adds it to the scene.
// Options are applied after those defaults.
func (s *Scene) NewEmitter(cfg EmitterConfig, opts ...EmitterOption) *Emitter {
	base := []EmitterOption{WithContainer(s.stage), WithGlobalScale(s.config.GlobalScale)}
	e := NewEmitter(s.pool, cfg, append(base, opts...)...)
	s.emitters = append(s.emitters, e)
	return e
}

// AddEmitter appends an existing emitter.
func (s *Scene) AddEmitter(e *Emitter) {
	s.emitters = append(s.emitters, e)
}

// RemoveEmitter flags e for removal on the next emitters pass. Its live
// particles are released when it is dropped.
func (s *Scene) RemoveEmitter(e *Emitter) {
	e.Remove()
}

// --- Timers ---

// AddTimer schedules callback to run once after seconds of scene time.
func (s *Scene) AddTimer(seconds float64, callback func()) *Timer {
	t := NewTimer(&s.clock, seconds)
	t.Callback = callback
	s.timers = append(s.timers, t)
	return t
}

// RemoveTimer cancels t; the timers pass drops it without firing.
func (s *Scene) RemoveTimer(t *Timer) {
	if t != nil {
		t.Cancel()
	}
}

// --- Tweens ---

// AddTween creates a tween for owner animating props and adds it to the
// scene. Owners are compared by identity, so use pointers.
func (s *Scene) AddTween(owner any, duration float32, fn ease.TweenFunc, props ...TweenProp) *Tween {
	return s.RunTween(NewTween(owner, duration, fn, props...))
}

// RunTween adds an already built tween to the scene and returns it.
func (s *Scene) RunTween(t *Tween) *Tween {
	s.tweens = append(s.tweens, t)
	return t
}

// GetTween returns the first registered tween for owner, or nil.
func (s *Scene) GetTween(owner any) *Tween {
	for _, t := range s.tweens {
		if t.owner == owner {
			return t
		}
	}
	return nil
}

// StopTweens stops every tween of owner, or every tween when owner is nil.
func (s *Scene) StopTweens(owner any, doComplete bool) {
	for _, t := range s.tweens {
		if owner == nil || t.owner == owner {
			t.Stop(doComplete)
		}
	}
}

// PauseTweens pauses every tween of owner, or every tween when owner is nil.
func (s *Scene) PauseTweens(owner any) {
	for _, t := range s.tweens {
		if owner == nil || t.owner == owner {
			t.Pause()
		}
	}
}

// ResumeTweens resumes every tween of owner, or every tween when owner is nil.
func (s *Scene) ResumeTweens(owner any) {
	for _, t := range s.tweens {
		if owner == nil || t.owner == owner {
			t.Resume()
		}
	}
}

// --- Collaborators ---

// SetWorld attaches a physics world stepped at the start of each frame.
func (s *Scene) SetWorld(w World) {
	s.world = w
}

// SetRenderer attaches the renderer used by Render.
func (s *Scene) SetRenderer(r Renderer) {
	s.renderer = r
}

// Renderer returns the attached renderer, or nil.
func (s *Scene) Renderer() Renderer {
	return s.renderer
}

// SetAudio attaches the audio collaborator muted by Pause.
func (s *Scene) SetAudio(a Audio) {
	s.audio = a
}

// SetEventSink sets the optional lifecycle event sink.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// update stats are logged to stderr and node tree warnings are printed.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// --- Accessors ---

// ID returns the scene's unique identifier.
func (s *Scene) ID() uuid.UUID { return s.id }

// Name returns the configured scene name.
func (s *Scene) Name() string { return s.config.Name }

// Config returns the scene settings.
func (s *Scene) Config() SceneConfig { return s.config }

// Stage returns the root container particles and sprites attach to.
func (s *Scene) Stage() *Node { return s.stage }

// Pool returns the particle pool shared by the scene's emitters.
func (s *Scene) Pool() *ParticlePool { return s.pool }

// Time returns the scene clock in seconds.
func (s *Scene) Time() float64 { return s.clock.Now() }

// Objects returns the objects collection. The returned slice MUST NOT be mutated.
func (s *Scene) Objects() []Object { return s.objects }

// Timers returns the timers collection. The returned slice MUST NOT be mutated.
func (s *Scene) Timers() []*Timer { return s.timers }

// Tweens returns the tweens collection. The returned slice MUST NOT be mutated.
func (s *Scene) Tweens() []*Tween { return s.tweens }

// Emitters returns the emitters collection. The returned slice MUST NOT be mutated.
func (s *Scene) Emitters() []*Emitter { return s.emitters }

// --- Lifecycle ---

func (s *Scene) activate() {
	if s.OnActivate != nil {
		s.OnActivate(s)
	}
	s.publish(EventSceneActivated, s)
}

// deactivate releases every live particle so pooled sprites are not left
// attached to a stage nobody renders.
func (s *Scene) deactivate() {
	for _, e := range s.emitters {
		e.Clear()
	}
	if s.OnDeactivate != nil {
		s.OnDeactivate(s)
	}
	s.publish(EventSceneDeactivated, s)
}

func (s *Scene) publish(typ SceneEventType, target any) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(SceneEvent{
		Type:    typ,
		SceneID: s.id,
		Scene:   s.config.Name,
		Time:    s.clock.Now(),
		Target:  target,
	})
}

// removeAt deletes s[i] preserving order and clears the vacated slot.
func removeAt[T any](s []T, i int) []T {
	var zero T
	copy(s[i:], s[i+1:])
	s[len(s)-1] = zero
	return s[:len(s)-1]
}
