package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySession    = 10
	PriorityWeapon     = 20 // Charge and zap strike use the tick-start snapshot
	PriorityMovement   = 30 // Player integration and entity pushing
	PriorityHostile    = 40 // After movement so AI reads the committed player position
	PriorityDeath      = 50
	PriorityProjectile = 60
	PriorityDoor       = 70
)
