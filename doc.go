// Package flicker is the per-frame simulation core of a 2D scene for
// [Ebitengine]: a pooled particle emitter and the scene orchestrator that
// drives it alongside timers, tweens, generic objects and an optional
// physics world.
//
// # Quick start
//
//	scene := flicker.NewScene(flicker.DefaultSceneConfig())
//
//	cfg := flicker.DefaultEmitterConfig()
//	cfg.Textures = []string{"spark"}
//	cfg.Position = flicker.Vec2{X: 320, Y: 240}
//	scene.NewEmitter(cfg)
//
//	cache := flicker.NewTextureCache()
//	cache.Add("spark", sparkImage)
//	scene.SetRenderer(flicker.NewEbitenRenderer(cache))
//
//	d := flicker.NewDirector(640, 480)
//	d.Activate(scene)
//	flicker.Run(d, flicker.RunConfig{Title: "Sparks", Width: 640, Height: 480})
//
// # Frame pass
//
// [Scene.Update] runs in a fixed order: the physics [World] steps, expired
// timers fire, emitters spawn and integrate, tweens advance, objects update.
// Every collection is walked in descending index order and entries flagged
// for removal are dropped in place, so removing the current element never
// skips or repeats a neighbor. Removal is always a flag ([Object.Remove],
// [Emitter.Remove], [Timer.Cancel], a completed [Tween]); the next pass does
// the actual removal.
//
// # Emitters
//
// An [Emitter] spawns Count particles every Rate seconds while active. Each
// stochastic parameter is a base plus [Sampler.Variance] of its spread.
// Particles are leased from a [Pool] keyed by EmitterConfig.PoolName and
// released exactly once when their life reaches zero; their sprite [Node] is
// kept with them so pooled particles do not rebuild visuals.
//
// Emitter configs can be decoded sparsely from JSON with
// [ParseEmitterConfig] and persisted by name with [PresetStore].
//
// # Rendering
//
// The simulation only writes abstract node attributes. [EbitenRenderer]
// draws them with Ebitengine; [TermRenderer] plots them on a tcell terminal.
//
// # Tweens
//
// Tweens are powered by [gween]. See [Scene.AddTween] and [TweenPosition].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package flicker
