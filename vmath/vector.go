package vmath

import (
	"math"
)

// Vec2 is a float64 vector on the ground plane
// X is lateral, Z runs along the corridor
type Vec2 struct {
	X, Z float64
}

func V2(x, z float64) Vec2 {
	return Vec2{X: x, Z: z}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Z + o.Z}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Z - o.Z}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Z * s}
}

// AddScaled returns v + o*s
func (v Vec2) AddScaled(o Vec2, s float64) Vec2 {
	return Vec2{v.X + o.X*s, v.Z + o.Z*s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Z}
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Z*v.Z
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Len()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Z * inv}
}

// Dist returns the Euclidean distance between two points
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// DistSq returns the squared distance, for comparisons without sqrt
func DistSq(a, b Vec2) float64 {
	return a.Sub(b).LenSq()
}

// Heading returns the yaw that faces from 'from' toward 'to' (atan2(dx, dz))
func Heading(from, to Vec2) float64 {
	d := to.Sub(from)
	return math.Atan2(d.X, d.Z)
}

// Forward returns the unit view direction for a yaw angle
func Forward(yaw float64) Vec2 {
	return Vec2{math.Sin(yaw), math.Cos(yaw)}
}

// Right returns the unit strafe direction for a yaw angle
func Right(yaw float64) Vec2 {
	return Vec2{math.Cos(yaw), -math.Sin(yaw)}
}
