package event

import (
	"github.com/lixenwraith/corridor/core"
)

type kinded interface {
	kindName() string
}

type volumed interface {
	volumeHint() float64
}

// MoveKey is a bit in the held movement key set
type MoveKey uint8

const (
	MoveForward MoveKey = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
)

// MoveKeys is the set of currently held movement keys
type MoveKeys uint8

func (k MoveKeys) Has(key MoveKey) bool {
	return uint8(k)&uint8(key) != 0
}

func (k MoveKeys) With(key MoveKey) MoveKeys {
	return MoveKeys(uint8(k) | uint8(key))
}

func (k MoveKeys) Without(key MoveKey) MoveKeys {
	return MoveKeys(uint8(k) &^ uint8(key))
}

// MoveKeysPayload replaces the held key set
type MoveKeysPayload struct {
	Keys MoveKeys
}

// TurnPayload carries a yaw delta in radians
type TurnPayload struct {
	Delta float64
}

// SessionPayload summarizes session values at emission time
type SessionPayload struct {
	Health int
	Ammo   int
}

// NoClipPayload reports the no-clip flag after a toggle
type NoClipPayload struct {
	Enabled bool
}

// PlayerHitPayload identifies the attacker of a hit or miss roll
type PlayerHitPayload struct {
	Source   core.Entity
	Kind     core.Kind
	Health   int // Player health after the roll
	Distance float64
	Chance   float64
}

func (p *PlayerHitPayload) kindName() string { return p.Kind.String() }

// EntityPayload identifies a hostile affected by an event
type EntityPayload struct {
	Entity core.Entity
	Kind   core.Kind
	Tag    string
	Health int
	X, Z   float64
}

func (p *EntityPayload) kindName() string { return p.Kind.String() }

// ZapStrikePayload lists entities damaged by one zap
type ZapStrikePayload struct {
	Targets []core.Entity
	Killed  int
}

// ProjectilePayload describes a projectile spawn or arrival
type ProjectilePayload struct {
	Projectile core.Entity
	Kind       core.ProjectileKind
	Owner      core.Entity
	X, Z       float64
	Loudness   float64 // Volume hint in [0, 1]
}

func (p *ProjectilePayload) volumeHint() float64 {
	if p.Loudness <= 0 {
		return 1
	}
	return p.Loudness
}

// DoorPayload identifies a door transition
type DoorPayload struct {
	ID       string
	Boundary int
	State    core.DoorState
}
