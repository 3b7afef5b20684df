package component

import (
	"fmt"
	"math"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/vmath"
)

// ProjectileComponent is a pamphlet or bolt in flight
type ProjectileComponent struct {
	Kind      core.ProjectileKind
	Owner     core.Entity // Zero for the player
	Position  vmath.Vec2
	Direction vmath.Vec2 // Unit length
	Speed     float64

	// Pamphlet ramp
	TargetSpeed  float64
	Acceleration float64
	TicksLeft    int

	// Bolt range budget, measured from Origin
	Origin      vmath.Vec2
	MaxDistance float64
}

// Velocity returns the per-tick displacement
func (p ProjectileComponent) Velocity() vmath.Vec2 {
	return p.Direction.Scale(p.Speed)
}

// Facing returns the flight heading in the same yaw convention as units
func (p ProjectileComponent) Facing() float64 {
	return math.Atan2(p.Direction.X, p.Direction.Z)
}

// VisualKey identifies the sprite to draw: kind/state
// Pamphlets ramp until they reach cruise speed
func (p ProjectileComponent) VisualKey() string {
	state := "flying"
	if p.Kind == core.ProjectilePamphlet {
		state = "cruising"
		if p.Speed < p.TargetSpeed {
			state = "ramping"
		}
	}
	return fmt.Sprintf("%s/%s", p.Kind, state)
}
