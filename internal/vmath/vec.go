// Package vmath holds the small amount of 2D float math the game needs.
package vmath

import (
	"fmt"
	"math"
)

// InvSqrt2 scales a diagonal step so it covers the same distance as an
// axis-aligned one.
const InvSqrt2 = 1 / math.Sqrt2

// Vec2 is a 2D vector in world pixels.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Div divides both components by d. Division by zero yields the zero vector.
func (v Vec2) Div(d float64) Vec2 {
	if d == 0 {
		return Vec2{}
	}
	return Vec2{v.X / d, v.Y / d}
}

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return o.Sub(v).Len() }

// Normalize returns the unit vector pointing the same way. The zero vector
// stays zero.
func (v Vec2) Normalize() Vec2 { return v.Div(v.Len()) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Less orders vectors by X, then Y.
func (v Vec2) Less(o Vec2) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}
