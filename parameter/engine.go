package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the default simulation rate in ticks per second
	TickRate = 60

	// TickInterval is the fixed simulation step derived from TickRate
	TickInterval = time.Second / TickRate

	// FrameUpdateInterval is the rendering frame interval (~30 FPS, terminal bound)
	FrameUpdateInterval = 33 * time.Millisecond

	// IntentBufferSize is the capacity of the scheduler's intent channel
	IntentBufferSize = 64
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// EventFlushPasses bounds how many times a flush re-drains events emitted by handlers
	EventFlushPasses = 4
)

// Terminal input
const (
	// KeyHoldWindow is how long a movement key counts as held after its last press or repeat
	// Must exceed the terminal's auto-repeat start delay (typically 250-500ms)
	KeyHoldWindow = 500 * time.Millisecond
)
