package engine

import (
	"time"
)

// TimeResource is the simulation clock advanced by World.Tick
type TimeResource struct {
	// Delta is the duration of the tick being processed
	Delta time.Duration

	// Elapsed is the total simulated time of the session
	Elapsed time.Duration

	// Tick counts ticks since the world was created
	Tick uint64
}
