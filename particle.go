package flicker

import "math"

// Particle holds the physical state of one simulated point plus the
// per-second visual deltas fixed at spawn. A particle belongs to exactly one
// emitter while leased; its Sprite survives release so the pool hands back
// particle and sprite together.
type Particle struct {
	Position Vec2
	Velocity Vec2
	Accel    Vec2

	// Life is the remaining lifetime in seconds. Zero is terminal.
	Life float64
	// Rotate spins the sprite; VelRotate turns the velocity direction.
	Rotate    float64
	VelRotate float64
	// DeltaAlpha and DeltaScale are linear per-second rates.
	DeltaAlpha float64
	DeltaScale float64

	Sprite *Node
}

// ParticlePool is the pool shared by emitters, keyed by EmitterConfig.PoolName.
type ParticlePool = Pool[*Particle]

// NewParticlePool creates an empty particle pool.
func NewParticlePool() *ParticlePool {
	return NewPool[*Particle]()
}

// EmitterOption customizes an Emitter at construction.
type EmitterOption func(*Emitter)

// WithSampler sets the randomness source. Use NewSampler for reproducible runs.
func WithSampler(s *Sampler) EmitterOption {
	return func(e *Emitter) { e.rand = s }
}

// WithContainer attaches spawned particle sprites to c.
func WithContainer(c *Node) EmitterOption {
	return func(e *Emitter) { e.Container = c }
}

// WithGlobalScale sets the rendering scale applied to particle displacement.
func WithGlobalScale(scale float64) EmitterOption {
	return func(e *Emitter) { e.scale = scale }
}

// Emitter spawns particles from a sampled configuration and integrates them
// each tick. The embedded EmitterConfig may be tuned between bursts.
type Emitter struct {
	EmitterConfig
	Removable

	// Container receives particle sprites when non-nil.
	Container *Node

	pool      *ParticlePool
	rand      *Sampler
	scale     float64
	particles []*Particle

	active        bool
	durationTimer float64
	rateTimer     float64
}

// NewEmitter creates an emitter drawing particles from pool. A nil pool gets
// a private one. The pool bucket for cfg.PoolName is created up front.
func NewEmitter(pool *ParticlePool, cfg EmitterConfig, opts ...EmitterOption) *Emitter {
	if pool == nil {
		pool = NewParticlePool()
	}
	if cfg.PoolName == "" {
		cfg.PoolName = DefaultPoolName
	}
	e := &Emitter{
		EmitterConfig: cfg,
		pool:          pool,
		scale:         1,
		active:        true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = DefaultSampler()
	}
	pool.Create(cfg.PoolName)
	return e
}

// Update advances the emitter by dt seconds: duration and rate timers first,
// then every live particle in reverse order, releasing dead ones in place.
func (e *Emitter) Update(dt float64) error {
	e.durationTimer += dt
	if e.Duration > 0 {
		e.active = e.durationTimer < e.Duration
	}

	if e.Rate > 0 && e.active {
		e.rateTimer += dt
		if e.rateTimer >= e.Rate {
			// Overshoot is dropped, not carried into the next interval.
			e.rateTimer = 0
			if err := e.Emit(e.Count); err != nil {
				return err
			}
		}
	}

	for i := len(e.particles) - 1; i >= 0; i-- {
		e.updateParticle(i, dt)
	}
	return nil
}

// Emit spawns n particles immediately, regardless of the rate timer.
// n <= 0 emits a single particle.
func (e *Emitter) Emit(n int) error {
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if err := e.addParticle(); err != nil {
			return err
		}
	}
	return nil
}

// addParticle leases a particle, samples its parameters and makes it live.
func (e *Emitter) addParticle() error {
	if len(e.Textures) == 0 {
		return &ConfigError{Emitter: e.PoolName, Field: "textures", Err: ErrNoTextures}
	}

	p, ok := e.pool.Acquire(e.PoolName)
	if !ok {
		p = &Particle{}
		e.pool.NoteConstructed()
	}
	r := e.rand

	p.Position.Set(
		e.Position.X+r.Variance(e.PositionVar.X),
		e.Position.Y+r.Variance(e.PositionVar.Y),
	)

	angleVar := r.Variance(e.AngleVar)
	p.Velocity.SetPolar(e.Angle+angleVar, e.Speed+r.Variance(e.SpeedVar))

	// The acceleration angle reuses the velocity's spread sample unless the
	// two spreads are configured differently.
	if e.AngleVar != e.AccelAngleVar {
		angleVar = r.Variance(e.AccelAngleVar)
	}
	p.Accel.SetPolar(e.AccelAngle+angleVar, e.AccelSpeed+r.Variance(e.AccelSpeedVar))

	p.Life = math.Max(0, e.Life+r.Variance(e.LifeVar))

	texture := e.Textures[r.Pick(len(e.Textures))]
	if p.Sprite == nil {
		p.Sprite = NewSprite(e.PoolName, texture)
	} else {
		p.Sprite.Texture = texture
	}

	p.Rotate = e.Rotate + r.Variance(e.RotateVar)
	p.VelRotate = e.VelRotate + r.Variance(e.VelRotateVar)

	startScale := e.StartScale + r.Variance(e.StartScaleVar)
	endScale := e.EndScale + r.Variance(e.EndScaleVar)

	// A zero-life particle is terminal; it is released on the next tick
	// without ever using its deltas.
	if p.Life > 0 {
		p.DeltaAlpha = (e.EndAlpha - e.StartAlpha) / p.Life
		p.DeltaScale = (endScale - startScale) / p.Life
	} else {
		p.DeltaAlpha = 0
		p.DeltaScale = 0
	}

	s := p.Sprite
	s.X = p.Position.X
	s.Y = p.Position.Y
	s.Rotation = 0
	s.Alpha = e.StartAlpha
	s.ScaleX = startScale
	s.ScaleY = startScale
	s.BlendMode = e.BlendMode
	s.Visible = true

	if e.Container != nil {
		e.Container.AddChild(s)
	}

	e.particles = append(e.particles, p)
	return nil
}

// updateParticle integrates the particle at index i, or releases it when its
// life is spent. Callers iterate in descending index order.
func (e *Emitter) updateParticle(i int, dt float64) {
	p := e.particles[i]
	if p.Life <= 0 {
		e.release(i)
		return
	}

	p.Life = math.Max(0, p.Life-dt)

	if e.TargetForce > 0 {
		p.Accel.Set(e.Target.X-p.Position.X, e.Target.Y-p.Position.Y).
			Normalize().
			Multiply(e.TargetForce)
	}

	p.Velocity.MultiplyAdd(p.Accel, dt).
		Limit(e.VelocityLimit).
		Rotate(p.VelRotate * dt)
	p.Position.MultiplyAdd(p.Velocity, e.scale*dt)

	s := p.Sprite
	s.Alpha = math.Max(0, s.Alpha+p.DeltaAlpha*dt)
	s.ScaleY += p.DeltaScale * dt
	s.ScaleX = s.ScaleY
	s.Rotation += p.Rotate * dt
	s.X = p.Position.X
	s.Y = p.Position.Y
}

// release detaches the particle at index i from its container, returns it to
// the pool and swap-removes it from the live slice. The element moved into i
// has already been visited by the descending loop.
func (e *Emitter) release(i int) {
	p := e.particles[i]
	if p.Sprite != nil && p.Sprite.Parent != nil {
		p.Sprite.RemoveFromParent()
	}
	e.pool.Release(e.PoolName, p)

	last := len(e.particles) - 1
	e.particles[i] = e.particles[last]
	e.particles[last] = nil
	e.particles = e.particles[:last]
}

// Clear releases every live particle immediately.
func (e *Emitter) Clear() {
	for i := len(e.particles) - 1; i >= 0; i-- {
		e.release(i)
	}
}

// Reset restores every numeric configuration field to its default and
// rewinds the duration and rate timers so emission can start over. Vector
// fields (position, variances, target, velocity limit) are zeroed only when
// resetVec is true. Live particles are untouched.
func (e *Emitter) Reset(resetVec bool) {
	e.EmitterConfig.resetNumeric(resetVec)
	e.durationTimer = 0
	e.rateTimer = 0
	e.active = true
}

// SetGlobalScale sets the rendering scale applied to particle displacement.
func (e *Emitter) SetGlobalScale(scale float64) {
	e.scale = scale
}

// IsActive reports whether timed emission is still running.
func (e *Emitter) IsActive() bool {
	return e.active
}

// Elapsed returns the seconds accumulated by the duration timer.
func (e *Emitter) Elapsed() float64 {
	return e.durationTimer
}

// Particles returns the live particles. The returned slice MUST NOT be mutated.
func (e *Emitter) Particles() []*Particle {
	return e.particles
}

// Len returns the number of live particles.
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Pool returns the pool particles are leased from.
func (e *Emitter) Pool() *ParticlePool {
	return e.pool
}
