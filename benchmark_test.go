package flicker

import "testing"

// setupBenchEmitter creates an emitter attached to a stage with n live,
// long-lived particles.
func setupBenchEmitter(b *testing.B, n int) *Emitter {
	b.Helper()
	cfg := DefaultEmitterConfig()
	cfg.Textures = []string{"dot"}
	cfg.Rate = 0
	cfg.Life = 1e9
	cfg.SpeedVar = 50
	cfg.AccelSpeed = 20
	e := NewEmitter(nil, cfg, WithSampler(NewSampler(1)), WithContainer(NewContainer("stage")))
	if err := e.Emit(n); err != nil {
		b.Fatal(err)
	}
	return e
}

// --- Emitter benchmarks ---

func BenchmarkEmitterUpdate_1000Particles(b *testing.B) {
	e := setupBenchEmitter(b, 1000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.Update(1.0 / 60)
	}
}

func BenchmarkEmitterUpdate_10000Particles(b *testing.B) {
	e := setupBenchEmitter(b, 10000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.Update(1.0 / 60)
	}
}

func BenchmarkEmitterTargetForce_10000Particles(b *testing.B) {
	e := setupBenchEmitter(b, 10000)
	e.Target = Vec2{320, 240}
	e.TargetForce = 200
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.Update(1.0 / 60)
	}
}

// BenchmarkEmitterSteadyState measures a continuous fountain after the pool
// has warmed up; acquire and release should not allocate.
func BenchmarkEmitterSteadyState(b *testing.B) {
	cfg := DefaultEmitterConfig()
	cfg.Textures = []string{"dot"}
	cfg.Rate = 1.0 / 60
	cfg.Count = 20
	cfg.Life = 1
	e := NewEmitter(nil, cfg, WithSampler(NewSampler(1)), WithContainer(NewContainer("stage")))
	for i := 0; i < 120; i++ {
		_ = e.Update(1.0 / 60)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.Update(1.0 / 60)
	}
}

// --- Scene benchmarks ---

func BenchmarkSceneUpdate_10Emitters(b *testing.B) {
	s := NewScene(DefaultSceneConfig())
	for i := 0; i < 10; i++ {
		cfg := DefaultEmitterConfig()
		cfg.Textures = []string{"dot"}
		cfg.Position = Vec2{X: float64(i * 50), Y: 100}
		s.NewEmitter(cfg, WithSampler(NewSampler(uint64(i))))
	}
	for i := 0; i < 60; i++ {
		_ = s.Update(1.0 / 60)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Update(1.0 / 60)
	}
}

func BenchmarkSamplerVariance(b *testing.B) {
	s := NewSampler(1)
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += s.Variance(10)
	}
	_ = sum
}
