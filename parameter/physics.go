package parameter

// Player Movement
const (
	// MoveSpeed is the acceleration added per tick for each held movement key
	MoveSpeed = 0.08

	// Friction is the per-tick velocity multiplier
	Friction = 0.85

	// PlayerCollisionRadius is the player's collision circle radius
	PlayerCollisionRadius = 0.4

	// WallBarrier is extra clearance kept from walls beyond the collision radius
	WallBarrier = 0.6

	// RejectDamping is the velocity multiplier applied when a move is rejected
	// Damping instead of zeroing lets the player slide along obstacles
	RejectDamping = 0.5
)

// Entity Pushing
const (
	// PushDisplacementFactor scales MoveSpeed into the pushed entity's per-tick displacement
	PushDisplacementFactor = 0.3

	// PushSpeedMultiplier is the fraction of velocity the player keeps while pushing
	PushSpeedMultiplier = 0.5

	// PushBlockedDamping is applied to velocity when the pushed entity is against a wall
	PushBlockedDamping = 0.1
)

// World Extents (hard safety bound independent of room geometry)
const (
	WorldMinX = -50.0
	WorldMaxX = 50.0
	WorldMinZ = -5.0
	WorldMaxZ = 65.0
)

// Player Look
const (
	// TurnStep is the yaw change applied per discrete turn intent (radians)
	TurnStep = 0.06
)
