package parameter

// Session Defaults
const (
	// PlayerMaxHealth is the default starting and maximum health
	PlayerMaxHealth = 3

	// StartingAmmo is the pamphlet count at session start
	StartingAmmo = 50

	// PlayerStartX and PlayerStartZ place the player in the centre of the second room
	PlayerStartX = 0.0
	PlayerStartZ = 15.0

	// PlayerStartYaw is the initial facing
	PlayerStartYaw = 0.0
)

// Hostile Damage
const (
	// HostileHitDamage is health removed from the player per successful attack roll
	HostileHitDamage = 1
)
