package flicker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// DefaultPoolName is the pool bucket shared by emitters that do not name their own.
const DefaultPoolName = "emitter"

// EmitterConfig controls how particles are spawned and behave. Angles are in
// radians, times in seconds, speeds in pixels per second. Every *Var field is
// a symmetric spread applied with Sampler.Variance.
type EmitterConfig struct {
	// PoolName keys the particle pool bucket.
	PoolName string `json:"poolName"`
	// Textures lists the texture names a particle sprite is drawn with. One is
	// picked uniformly per spawn. Must not be empty when particles spawn.
	Textures []string `json:"textures"`

	Position    Vec2 `json:"position"`
	PositionVar Vec2 `json:"positionVar"`

	Angle    float64 `json:"angle"`
	AngleVar float64 `json:"angleVar"`
	Speed    float64 `json:"speed"`
	SpeedVar float64 `json:"speedVar"`

	// Life is the particle lifetime.
	Life    float64 `json:"life"`
	LifeVar float64 `json:"lifeVar"`

	// Duration is the emitter lifetime; 0 emits forever.
	Duration float64 `json:"duration"`
	// Rate is the interval between bursts; 0 disables timed emission.
	Rate float64 `json:"rate"`
	// Count is the number of particles per burst.
	Count int `json:"count"`

	// VelRotate rotates the particle's velocity direction per second.
	VelRotate    float64 `json:"velRotate"`
	VelRotateVar float64 `json:"velRotateVar"`
	// Rotate spins the particle sprite per second.
	Rotate    float64 `json:"rotate"`
	RotateVar float64 `json:"rotateVar"`

	StartAlpha    float64 `json:"startAlpha"`
	EndAlpha      float64 `json:"endAlpha"`
	StartScale    float64 `json:"startScale"`
	StartScaleVar float64 `json:"startScaleVar"`
	EndScale      float64 `json:"endScale"`
	EndScaleVar   float64 `json:"endScaleVar"`

	// Target is steered towards while TargetForce > 0. The steering force
	// replaces the spawn-time acceleration every tick.
	Target      Vec2    `json:"target"`
	TargetForce float64 `json:"targetForce"`

	AccelAngle    float64 `json:"accelAngle"`
	AccelAngleVar float64 `json:"accelAngleVar"`
	AccelSpeed    float64 `json:"accelSpeed"`
	AccelSpeedVar float64 `json:"accelSpeedVar"`

	// VelocityLimit clamps each velocity axis to [-limit, limit].
	VelocityLimit Vec2 `json:"velocityLimit"`

	BlendMode BlendMode `json:"blendMode"`
}

// DefaultEmitterConfig returns the documented defaults.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		PoolName:      DefaultPoolName,
		AngleVar:      math.Pi,
		Speed:         100,
		Life:          2,
		Rate:          0.1,
		Count:         10,
		StartAlpha:    1,
		StartScale:    1,
		EndScale:      1,
		AccelAngle:    math.Pi / 2,
		VelocityLimit: Vec2{100, 100},
	}
}

// ParseEmitterConfig decodes a sparse JSON document onto the defaults.
// Fields absent from the document keep their default values; unknown fields
// are rejected so preset typos surface early.
func ParseEmitterConfig(data []byte) (EmitterConfig, error) {
	cfg := DefaultEmitterConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return EmitterConfig{}, fmt.Errorf("parse emitter config: %w", err)
	}
	if cfg.PoolName == "" {
		cfg.PoolName = DefaultPoolName
	}
	return cfg, nil
}

// emitterNumericFields enumerates every float field restored by Reset.
var emitterNumericFields = []func(*EmitterConfig) *float64{
	func(c *EmitterConfig) *float64 { return &c.Angle },
	func(c *EmitterConfig) *float64 { return &c.AngleVar },
	func(c *EmitterConfig) *float64 { return &c.Speed },
	func(c *EmitterConfig) *float64 { return &c.SpeedVar },
	func(c *EmitterConfig) *float64 { return &c.Life },
	func(c *EmitterConfig) *float64 { return &c.LifeVar },
	func(c *EmitterConfig) *float64 { return &c.Duration },
	func(c *EmitterConfig) *float64 { return &c.Rate },
	func(c *EmitterConfig) *float64 { return &c.VelRotate },
	func(c *EmitterConfig) *float64 { return &c.VelRotateVar },
	func(c *EmitterConfig) *float64 { return &c.Rotate },
	func(c *EmitterConfig) *float64 { return &c.RotateVar },
	func(c *EmitterConfig) *float64 { return &c.StartAlpha },
	func(c *EmitterConfig) *float64 { return &c.EndAlpha },
	func(c *EmitterConfig) *float64 { return &c.StartScale },
	func(c *EmitterConfig) *float64 { return &c.StartScaleVar },
	func(c *EmitterConfig) *float64 { return &c.EndScale },
	func(c *EmitterConfig) *float64 { return &c.EndScaleVar },
	func(c *EmitterConfig) *float64 { return &c.TargetForce },
	func(c *EmitterConfig) *float64 { return &c.AccelAngle },
	func(c *EmitterConfig) *float64 { return &c.AccelAngleVar },
	func(c *EmitterConfig) *float64 { return &c.AccelSpeed },
	func(c *EmitterConfig) *float64 { return &c.AccelSpeedVar },
}

// emitterVectorFields enumerates every vector field zeroed by Reset(true).
var emitterVectorFields = []func(*EmitterConfig) *Vec2{
	func(c *EmitterConfig) *Vec2 { return &c.Position },
	func(c *EmitterConfig) *Vec2 { return &c.PositionVar },
	func(c *EmitterConfig) *Vec2 { return &c.Target },
	func(c *EmitterConfig) *Vec2 { return &c.VelocityLimit },
}

// resetNumeric restores every numeric field of c to its default and, when
// resetVec is set, zeroes every vector field. Names, textures and the blend
// mode are left alone.
func (c *EmitterConfig) resetNumeric(resetVec bool) {
	def := DefaultEmitterConfig()
	for _, field := range emitterNumericFields {
		*field(c) = *field(&def)
	}
	c.Count = def.Count
	if resetVec {
		for _, field := range emitterVectorFields {
			field(c).Set(0, 0)
		}
	}
}
