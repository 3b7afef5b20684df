package parameter

import (
	"time"
)

// Zapper
const (
	// ZapRange is the radius of the zapper's area damage around the player
	ZapRange = 3.0

	// ZapDamage is damage applied to each entity inside ZapRange
	ZapDamage = 1

	// ZapRechargeDuration is the time to refill charge from 0 to 1
	ZapRechargeDuration = 1 * time.Second

	// ZapStrikeDelay is the jab animation time before damage resolves (peak extension)
	ZapStrikeDelay = 90 * time.Millisecond

	// ZapJabDuration is the full jab animation window
	ZapJabDuration = 270 * time.Millisecond
)

// Pamphlet
const (
	// PamphletStartSpeed is the initial per-tick speed
	PamphletStartSpeed = 0.05

	// PamphletTargetSpeed is the cruising per-tick speed
	PamphletTargetSpeed = 0.3

	// PamphletAcceleration is the per-tick speed increase until target speed
	PamphletAcceleration = 0.015

	// PamphletLifetimeTicks is the number of ticks before the pamphlet expires
	PamphletLifetimeTicks = 100

	// PamphletHitRadius is the distance at which a pamphlet converts an entity
	PamphletHitRadius = 1.0
)

// Hostile Bolt
const (
	// BoltSpeed is the constant per-tick bolt speed
	BoltSpeed = 0.8

	// BoltSpread is the lateral random spread applied once at spawn
	BoltSpread = 0.3

	// BoltArrivalRadius is the player-proximity threshold that ends the bolt
	BoltArrivalRadius = 0.5

	// BoltMaxDistance is the maximum travel distance from the firing position
	BoltMaxDistance = 20.0
)

// Hostile Attack
const (
	// AttackMinHitChance is the floor of the distance-scaled hit probability
	AttackMinHitChance = 0.3

	// AttackDisplayDuration is how long a unit stays in Attacking after firing
	AttackDisplayDuration = 200 * time.Millisecond

	// MuzzleFlashDuration is the visual lifetime of the muzzle flash
	MuzzleFlashDuration = 100 * time.Millisecond
)
