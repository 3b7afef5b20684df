package parameter

import "time"

// Room Geometry
const (
	// RoomCount is the number of rooms laid end-to-end along Z
	RoomCount = 6

	// RoomDepth is the length of a room along Z
	RoomDepth = 10.0

	// RoomHalfWidth is half the lateral extent of every room
	RoomHalfWidth = 5.0

	// DoorGapHalfWidth is half the width of the opening in a room's far wall
	DoorGapHalfWidth = 1.5

	// RoomInteriorHalfWidth bounds hostile placement and movement laterally
	RoomInteriorHalfWidth = 4.0

	// RoomInteriorMargin keeps hostile movement this far from the near/far walls
	RoomInteriorMargin = 1.0

	// PatrolMargin keeps patrol targets this far from the near/far walls
	PatrolMargin = 2.0
)

// Door Timing
const (
	// DoorOpenDelay is the pause between the open request and the first animation step
	DoorOpenDelay = 60 * time.Millisecond

	// DoorAnimationSteps is the number of discrete interpolation steps per transition
	DoorAnimationSteps = 10

	// DoorStepDuration is the duration of one interpolation step
	DoorStepDuration = 30 * time.Millisecond

	// DoorOpenDuration is how long a door stays open before auto-closing
	DoorOpenDuration = 5 * time.Second

	// DoorClosedHeight and DoorOpenHeight are the visual heights the animation interpolates between
	DoorClosedHeight = 2.0
	DoorOpenHeight   = 6.0

	// DoorInteractRange is the maximum distance from which the player can open a door
	DoorInteractRange = 4.0
)
