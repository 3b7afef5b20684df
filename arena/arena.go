// Package arena models the fixed corridor of rooms and answers navigability queries
package arena

import (
	"fmt"
	"math"

	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// Gate reports whether the door in a room boundary currently lets things through
// Boundary b separates room b-1 from room b
type Gate interface {
	GapOpen(boundary int) bool
}

// GateFunc adapts a function to Gate
type GateFunc func(boundary int) bool

func (f GateFunc) GapOpen(boundary int) bool { return f(boundary) }

// Layout describes a line of equally sized rooms along +Z starting at z=0
type Layout struct {
	Rooms        int
	Depth        float64
	HalfWidth    float64
	GapHalfWidth float64
}

// DefaultLayout returns the six-room corridor
func DefaultLayout() Layout {
	return Layout{
		Rooms:        parameter.RoomCount,
		Depth:        parameter.RoomDepth,
		HalfWidth:    parameter.RoomHalfWidth,
		GapHalfWidth: parameter.DoorGapHalfWidth,
	}
}

// RoomIndex resolves the room containing z, possibly outside [0, Rooms)
func (l Layout) RoomIndex(z float64) int {
	return int(math.Floor(z / l.Depth))
}

// RoomStart returns the near wall Z of room i
func (l Layout) RoomStart(room int) float64 {
	return float64(room) * l.Depth
}

// Boundaries returns the number of internal walls carrying a door gap
func (l Layout) Boundaries() int {
	if l.Rooms < 1 {
		return 0
	}
	return l.Rooms - 1
}

// BoundaryZ returns the Z coordinate of boundary b
func (l Layout) BoundaryZ(boundary int) float64 {
	return float64(boundary) * l.Depth
}

// DoorID returns the identifier of the door in boundary b
func DoorID(boundary int) string {
	return fmt.Sprintf("door_%d_%d", boundary-1, boundary)
}

// Rect is an axis-aligned region on the ground plane
type Rect struct {
	MinX, MaxX, MinZ, MaxZ float64
}

// Contains reports whether p lies inside r, edges inclusive
func (r Rect) Contains(p vmath.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Z >= r.MinZ && p.Z <= r.MaxZ
}

// Clamp returns p moved to the nearest point inside r
func (r Rect) Clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Clamp(p.X, r.MinX, r.MaxX),
		Z: vmath.Clamp(p.Z, r.MinZ, r.MaxZ),
	}
}

// Interior returns the part of a room kept at least halfWidth from the side walls
// and margin from the near and far walls
func (l Layout) Interior(room int, halfWidth, margin float64) Rect {
	start := l.RoomStart(room)
	return Rect{
		MinX: -halfWidth,
		MaxX: halfWidth,
		MinZ: start + margin,
		MaxZ: start + l.Depth - margin,
	}
}

// CheckBounds reports whether a body of clearance buffer may occupy p
// A position inside a wall's door gap defers to the gate; the first room's near wall
// and the last room's far wall are solid
// A nil gate treats every gap as open
func (l Layout) CheckBounds(p vmath.Vec2, buffer float64, gate Gate) bool {
	room := l.RoomIndex(p.Z)
	if room < 0 || room >= l.Rooms {
		return false
	}

	if math.Abs(p.X) > l.HalfWidth-buffer {
		return false
	}

	start := l.RoomStart(room)
	inGap := math.Abs(p.X) <= l.GapHalfWidth-buffer

	if p.Z < start+buffer {
		if room == 0 || !inGap {
			return false
		}
		return gapOpen(gate, room)
	}

	if p.Z > start+l.Depth-buffer {
		if room == l.Rooms-1 || !inGap {
			return false
		}
		return gapOpen(gate, room+1)
	}

	return true
}

// InGap reports whether a body of clearance buffer at p stands in boundary's door gap,
// the slab where a closed door would block it
func (l Layout) InGap(p vmath.Vec2, buffer float64, boundary int) bool {
	return math.Abs(p.Z-l.BoundaryZ(boundary)) < buffer && math.Abs(p.X) <= l.GapHalfWidth
}

func gapOpen(gate Gate, boundary int) bool {
	if gate == nil {
		return true
	}
	return gate.GapOpen(boundary)
}

// WithinWorld is the hard safety bound applied independently of room geometry
func WithinWorld(p vmath.Vec2) bool {
	return p.X > parameter.WorldMinX && p.X < parameter.WorldMaxX &&
		p.Z > parameter.WorldMinZ && p.Z < parameter.WorldMaxZ
}
