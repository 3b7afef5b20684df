package parameter

import (
	"time"
)

// Shared Hostile Behavior
const (
	// PatrolRetargetMin and PatrolRetargetMax bound the randomized patrol retarget interval
	PatrolRetargetMin = 3 * time.Second
	PatrolRetargetMax = 7 * time.Second

	// PatrolArrivalRadius triggers an early retarget when the unit reaches its target
	PatrolArrivalRadius = 0.5

	// AggressiveStandoff is the distance at which an advancing unit stops
	AggressiveStandoff = 2.5

	// DeathFrameInterval is the duration of one death animation frame
	DeathFrameInterval = 100 * time.Millisecond
)

// Small Droid
const (
	SmallDroidHealth      = 2
	SmallDroidRadius      = 0.8
	SmallDroidIdleFrames  = 4
	SmallDroidFrameTime   = 100 * time.Millisecond
	SmallDroidFadePerTick = 0.02
)

// Mid Droid
const (
	MidDroidHealth      = 3
	MidDroidRadius      = 0.75
	MidDroidIdleFrames  = 13
	MidDroidFrameTime   = 100 * time.Millisecond
	MidDroidFadePerTick = 0.02
)

// Heavy Droid
const (
	HeavyDroidHealth      = 2
	HeavyDroidRadius      = 1.8
	HeavyDroidIdleFrames  = 13
	HeavyDroidFrameTime   = 100 * time.Millisecond
	HeavyDroidFadePerTick = 0.02
)

// Trooper
const (
	TrooperHealth      = 5
	TrooperRadius      = 0.6
	TrooperIdleFrames  = 24
	TrooperFrameTime   = 100 * time.Millisecond
	TrooperDeathFrames = 14
	TrooperFadePerTick = 0.05

	// TrooperPatrolSpeed and TrooperAggressiveSpeed are per-tick movement speeds
	TrooperPatrolSpeed     = 0.008
	TrooperAggressiveSpeed = 0.025

	// TrooperAttackRange is the maximum distance for a ranged attack
	TrooperAttackRange = 8.0

	// TrooperAttackCooldown is the minimum time between shots
	TrooperAttackCooldown = 2 * time.Second
)

// Creature
const (
	CreatureHealth      = 4
	CreatureRadius      = 1.2
	CreatureIdleFrames  = 9
	CreatureFrameTime   = 100 * time.Millisecond
	CreatureFadePerTick = 0.02
)
