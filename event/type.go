package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Input Intents ===

	// EventMoveKeysRequest replaces the set of held movement keys
	// Trigger: Input collaborator
	// Consumer: MovementSystem | Payload: *MoveKeysPayload
	EventMoveKeysRequest

	// EventTurnRequest rotates the player's yaw
	// Trigger: Input collaborator
	// Consumer: MovementSystem | Payload: *TurnPayload
	EventTurnRequest

	// EventZapRequest fires the zapper if charged
	// Trigger: Input collaborator
	// Consumer: WeaponSystem | Payload: nil
	EventZapRequest

	// EventPamphletRequest throws a pamphlet if ammo remains
	// Trigger: Input collaborator
	// Consumer: WeaponSystem | Payload: nil
	EventPamphletRequest

	// EventDoorOpenRequest opens the nearest door in reach
	// Trigger: Input collaborator
	// Consumer: DoorSystem | Payload: nil
	EventDoorOpenRequest

	// EventNoClipToggle flips collision bypass for the player
	// Trigger: Input collaborator
	// Consumer: SessionSystem | Payload: nil
	EventNoClipToggle

	// EventGameReset tears down and repopulates the session
	// Trigger: Input collaborator (restart), CLI
	// Consumer: SessionSystem, all systems (Init) | Payload: nil
	EventGameReset

	// === Session ===

	// EventSessionStarted signals a freshly populated session
	// Trigger: World.InitSession
	// Consumer: Listeners | Payload: *SessionPayload
	EventSessionStarted

	// EventPlayerHit signals a successful hostile attack roll
	// Trigger: HostileSystem
	// Consumer: Listeners | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventPlayerMissed signals a failed hostile attack roll
	// Trigger: HostileSystem
	// Consumer: Listeners | Payload: *PlayerHitPayload
	EventPlayerMissed

	// EventGameOver signals health reaching zero, emitted once per session
	// Trigger: World.DamagePlayer
	// Consumer: Listeners | Payload: *SessionPayload
	EventGameOver

	// EventNoClipChanged reports the new no-clip state
	// Trigger: SessionSystem
	// Consumer: Listeners | Payload: *NoClipPayload
	EventNoClipChanged

	// === Weapons ===

	// EventZapFired signals the zapper charge was consumed
	// Trigger: WeaponSystem
	// Consumer: Listeners | Payload: nil
	EventZapFired

	// EventZapStrike signals zap damage resolution at peak jab extension
	// Trigger: WeaponSystem
	// Consumer: Listeners | Payload: *ZapStrikePayload
	EventZapStrike

	// EventZapReady signals the zapper finished recharging
	// Trigger: WeaponSystem
	// Consumer: Listeners | Payload: nil
	EventZapReady

	// EventPamphletFired signals a pamphlet was thrown
	// Trigger: WeaponSystem
	// Consumer: Listeners | Payload: *ProjectilePayload
	EventPamphletFired

	// EventBoltFired signals a hostile shot
	// Trigger: HostileSystem
	// Consumer: Listeners | Payload: *ProjectilePayload
	EventBoltFired

	// EventBoltArrived signals a bolt reached the player, visual timing only
	// Trigger: ProjectileSystem
	// Consumer: Listeners | Payload: *ProjectilePayload
	EventBoltArrived

	// === Hostiles ===

	// EventEntityHurt signals damage to a hostile that survived it
	// Trigger: WeaponSystem
	// Consumer: Listeners | Payload: *EntityPayload
	EventEntityHurt

	// EventEntityConverted signals a pamphlet conversion
	// Trigger: ProjectileSystem
	// Consumer: Listeners | Payload: *EntityPayload
	EventEntityConverted

	// EventEntityDied signals a hostile entering Dying
	// Trigger: WeaponSystem
	// Consumer: Listeners | Payload: *EntityPayload
	EventEntityDied

	// EventEntityRemoved signals a hostile finished fading and left the world
	// Trigger: DeathSystem
	// Consumer: Listeners | Payload: *EntityPayload
	EventEntityRemoved

	// === Doors ===

	// EventDoorOpening signals an open request accepted (door sound)
	// Trigger: DoorSystem
	// Consumer: Listeners | Payload: *DoorPayload
	EventDoorOpening

	// EventDoorOpened signals a door fully open
	// Trigger: DoorSystem
	// Consumer: Listeners | Payload: *DoorPayload
	EventDoorOpened

	// EventDoorClosing signals auto-close starting (door sound)
	// Trigger: DoorSystem
	// Consumer: Listeners | Payload: *DoorPayload
	EventDoorClosing

	// EventDoorClosed signals a door fully closed
	// Trigger: DoorSystem
	// Consumer: Listeners | Payload: *DoorPayload
	EventDoorClosed

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

// Key returns the identifying key collaborators map to cues
// Events carrying a hostile kind are keyed per kind, e.g. "entity-died/trooper"
func (e GameEvent) Key() string {
	name := e.Type.String()
	if k, ok := e.Payload.(kinded); ok {
		return name + "/" + k.kindName()
	}
	return name
}

// Volume returns the payload's volume hint, 1 when absent
func (e GameEvent) Volume() float64 {
	if v, ok := e.Payload.(volumed); ok {
		return v.volumeHint()
	}
	return 1
}
