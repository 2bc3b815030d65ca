package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Vec2 is the position/velocity type shared by the engine and the ECS layer.
type Vec2 = math.Vec2

// Zero is the zero vector.
var Zero = Vec2{}

// V builds a vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func Length(v Vec2) float64 {
	return stdmath.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector when v has
// no length.
func Normalize(v Vec2) Vec2 {
	l := Length(v)
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: stdmath.Cos(angle), Y: stdmath.Sin(angle)}
}

// Angle returns the direction of v in radians.
func Angle(v Vec2) float64 {
	return stdmath.Atan2(v.Y, v.X)
}
