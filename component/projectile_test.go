package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/vmath"
)

func TestProjectileVelocity(t *testing.T) {
	p := ProjectileComponent{Direction: vmath.V2(0, -1), Speed: 0.3}
	assert.Equal(t, vmath.V2(0, -0.3), p.Velocity())

	p.Speed = 0
	assert.Zero(t, p.Velocity().Len())
}

func TestProjectileFacingAndVisualKey(t *testing.T) {
	p := ProjectileComponent{
		Kind:        core.ProjectilePamphlet,
		Direction:   vmath.V2(1, 0),
		Speed:       0.05,
		TargetSpeed: 0.3,
	}
	assert.InDelta(t, math.Pi/2, p.Facing(), 1e-9)
	assert.Equal(t, "pamphlet/ramping", p.VisualKey())

	p.Speed = p.TargetSpeed
	assert.Equal(t, "pamphlet/cruising", p.VisualKey())

	bolt := ProjectileComponent{Kind: core.ProjectileBolt, Direction: vmath.V2(0, -1)}
	assert.InDelta(t, math.Pi, math.Abs(bolt.Facing()), 1e-9)
	assert.Equal(t, "bolt/flying", bolt.VisualKey())
}
