package core

// Entity is a unique identifier for an actor in the world
// Zero is never issued and marks "no entity"
type Entity uint64

// Kind identifies a hostile unit variant
type Kind uint8

const (
	KindSmallDroid Kind = iota
	KindMidDroid
	KindHeavyDroid
	KindTrooper
	KindCreature
)

var kindNames = [...]string{
	KindSmallDroid: "small-droid",
	KindMidDroid:   "mid-droid",
	KindHeavyDroid: "heavy-droid",
	KindTrooper:    "trooper",
	KindCreature:   "creature",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds lists every hostile kind in declaration order
func Kinds() []Kind {
	return []Kind{KindSmallDroid, KindMidDroid, KindHeavyDroid, KindTrooper, KindCreature}
}

// HostileState is the behavioral state of a hostile unit
type HostileState uint8

const (
	StatePatrol HostileState = iota
	StateAggressive
	StateAttacking
	StateDying
	StateRemoved
)

var hostileStateNames = [...]string{
	StatePatrol:     "patrol",
	StateAggressive: "aggressive",
	StateAttacking:  "attacking",
	StateDying:      "dying",
	StateRemoved:    "removed",
}

func (s HostileState) String() string {
	if int(s) < len(hostileStateNames) {
		return hostileStateNames[s]
	}
	return "unknown"
}

// DoorState is the lifecycle state of a door
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

var doorStateNames = [...]string{
	DoorClosed:  "closed",
	DoorOpening: "opening",
	DoorOpen:    "open",
	DoorClosing: "closing",
}

func (s DoorState) String() string {
	if int(s) < len(doorStateNames) {
		return doorStateNames[s]
	}
	return "unknown"
}

// ProjectileKind discriminates projectile variants
type ProjectileKind uint8

const (
	ProjectilePamphlet ProjectileKind = iota // Player-thrown, converts on hit
	ProjectileBolt                           // Hostile laser, visual timing only
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectilePamphlet:
		return "pamphlet"
	case ProjectileBolt:
		return "bolt"
	}
	return "unknown"
}
