package flicker

import "math"

// Vec2 is a 2D vector used for positions, velocities, accelerations and
// limits. The mutating methods operate in place and return the receiver so
// calls can be chained without allocating on the particle hot path.
type Vec2 struct {
	X, Y float64
}

// Set assigns both components.
func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X = x
	v.Y = y
	return v
}

// SetPolar assigns the vector from an angle in radians and a length.
func (v *Vec2) SetPolar(angle, length float64) *Vec2 {
	sin, cos := math.Sincos(angle)
	v.X = cos * length
	v.Y = sin * length
	return v
}

// Normalize scales the vector to unit length. The zero vector is left as is.
func (v *Vec2) Normalize() *Vec2 {
	l := v.Length()
	if l > 0 {
		v.X /= l
		v.Y /= l
	}
	return v
}

// Multiply scales both components by s.
func (v *Vec2) Multiply(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// MultiplyAdd adds o scaled by s: v += o*s.
func (v *Vec2) MultiplyAdd(o Vec2, s float64) *Vec2 {
	v.X += o.X * s
	v.Y += o.Y * s
	return v
}

// Limit clamps each axis independently to [-limit, limit].
func (v *Vec2) Limit(limit Vec2) *Vec2 {
	v.X = clamp(v.X, -limit.X, limit.X)
	v.Y = clamp(v.Y, -limit.Y, limit.Y)
	return v
}

// Rotate rotates the vector by angle radians.
func (v *Vec2) Rotate(angle float64) *Vec2 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	x := v.X*cos - v.Y*sin
	y := v.X*sin + v.Y*cos
	v.X = x
	v.Y = y
	return v
}

// Length returns the Euclidean length.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
