package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// Profile carries the per-kind constants injected into a hostile at construction
type Profile struct {
	Kind      core.Kind
	MaxHealth int
	Radius    float64

	IdleFrames    int
	IdleFrameTime time.Duration

	// DeathFrames is the number of death animation frames played before fading
	DeathFrames int

	// FadePerTick is the opacity removed each tick once the death animation is done
	FadePerTick float64

	// Zero speed keeps the unit stationary in that state
	PatrolSpeed     float64
	AggressiveSpeed float64

	// Zero range disables ranged attacks
	AttackRange    float64
	AttackCooldown time.Duration
}

var profiles = map[core.Kind]Profile{
	core.KindSmallDroid: {
		Kind:          core.KindSmallDroid,
		MaxHealth:     parameter.SmallDroidHealth,
		Radius:        parameter.SmallDroidRadius,
		IdleFrames:    parameter.SmallDroidIdleFrames,
		IdleFrameTime: parameter.SmallDroidFrameTime,
		FadePerTick:   parameter.SmallDroidFadePerTick,
	},
	core.KindMidDroid: {
		Kind:          core.KindMidDroid,
		MaxHealth:     parameter.MidDroidHealth,
		Radius:        parameter.MidDroidRadius,
		IdleFrames:    parameter.MidDroidIdleFrames,
		IdleFrameTime: parameter.MidDroidFrameTime,
		FadePerTick:   parameter.MidDroidFadePerTick,
	},
	core.KindHeavyDroid: {
		Kind:          core.KindHeavyDroid,
		MaxHealth:     parameter.HeavyDroidHealth,
		Radius:        parameter.HeavyDroidRadius,
		IdleFrames:    parameter.HeavyDroidIdleFrames,
		IdleFrameTime: parameter.HeavyDroidFrameTime,
		FadePerTick:   parameter.HeavyDroidFadePerTick,
	},
	core.KindTrooper: {
		Kind:            core.KindTrooper,
		MaxHealth:       parameter.TrooperHealth,
		Radius:          parameter.TrooperRadius,
		IdleFrames:      parameter.TrooperIdleFrames,
		IdleFrameTime:   parameter.TrooperFrameTime,
		DeathFrames:     parameter.TrooperDeathFrames,
		FadePerTick:     parameter.TrooperFadePerTick,
		PatrolSpeed:     parameter.TrooperPatrolSpeed,
		AggressiveSpeed: parameter.TrooperAggressiveSpeed,
		AttackRange:     parameter.TrooperAttackRange,
		AttackCooldown:  parameter.TrooperAttackCooldown,
	},
	core.KindCreature: {
		Kind:          core.KindCreature,
		MaxHealth:     parameter.CreatureHealth,
		Radius:        parameter.CreatureRadius,
		IdleFrames:    parameter.CreatureIdleFrames,
		IdleFrameTime: parameter.CreatureFrameTime,
		FadePerTick:   parameter.CreatureFadePerTick,
	},
}

// ProfileFor returns the built-in profile of a kind
func ProfileFor(kind core.Kind) (Profile, bool) {
	p, ok := profiles[kind]
	return p, ok
}

// CanAttack reports whether the profile has a ranged attack
func (p Profile) CanAttack() bool {
	return p.AttackRange > 0
}

// HostileComponent is the shared state machine of every hostile kind
type HostileComponent struct {
	Profile Profile

	// Tag is a stable human-readable name, e.g. "trooper_2_0"
	Tag string

	Position vmath.Vec2
	HomeRoom int
	Health   int
	State    core.HostileState

	// Converted is one-way
	Converted bool

	Facing  float64
	Opacity float64

	Frame      int
	FrameTimer time.Duration

	PatrolTarget vmath.Vec2
	PatrolTimer  time.Duration // Remaining until retarget

	AttackCooldown time.Duration // Remaining until next shot allowed
	AttackDisplay  time.Duration // Remaining in Attacking
	MuzzleFlash    time.Duration // Remaining visual flash

	DeathFrame int
	DeathTimer time.Duration
}

// NewHostile builds a patrolling unit at full health
func NewHostile(profile Profile, tag string, pos vmath.Vec2, homeRoom int) HostileComponent {
	return HostileComponent{
		Profile:      profile,
		Tag:          tag,
		Position:     pos,
		HomeRoom:     homeRoom,
		Health:       profile.MaxHealth,
		State:        core.StatePatrol,
		Opacity:      1.0,
		PatrolTarget: pos,
	}
}

// Dying reports whether the unit has left play, it no longer collides or takes hits
func (h HostileComponent) Dying() bool {
	return h.State >= core.StateDying
}

// TakeDamage subtracts n health and forces the unit aggressive
// Returns false when the unit was already dying
func (h *HostileComponent) TakeDamage(n int) bool {
	if h.Dying() {
		return false
	}
	h.Health -= n
	h.provoke()
	if h.Health <= 0 {
		h.beginDying()
	}
	return true
}

// Convert marks the unit as won over and forces it aggressive
// Returns true only on the first effective call
func (h *HostileComponent) Convert() bool {
	if h.Dying() || h.Converted {
		return false
	}
	h.Converted = true
	h.provoke()
	return true
}

// provoke moves a patrolling unit into Aggressive, Attacking is left alone
func (h *HostileComponent) provoke() {
	if h.State == core.StatePatrol {
		h.State = core.StateAggressive
	}
}

func (h *HostileComponent) beginDying() {
	h.State = core.StateDying
	h.DeathFrame = 0
	h.DeathTimer = 0
	h.AttackDisplay = 0
	h.MuzzleFlash = 0
}

// Engaged reports whether the unit is hunting the player
func (h HostileComponent) Engaged() bool {
	return h.State == core.StateAggressive || h.State == core.StateAttacking
}

// DeathAnimationDone reports whether every death frame has played
func (h HostileComponent) DeathAnimationDone() bool {
	return h.DeathFrame >= h.Profile.DeathFrames
}

// VisualKey identifies the sprite to draw: kind/state/frame
func (h HostileComponent) VisualKey() string {
	frame := h.Frame
	if h.State == core.StateDying {
		frame = h.DeathFrame
	}
	return fmt.Sprintf("%s/%s/%d", h.Profile.Kind, h.State, frame)
}
