package engine

import (
	"github.com/lixenwraith/corridor/event"
)

// System is a unit of per-tick simulation logic
// Systems also receive routed events through HandleEvent
type System interface {
	// Init resets internal state, called at registration and on session reset
	Init()

	// Name identifies the system in logs
	Name() string

	// Priority orders Update calls, lower runs first
	Priority() int

	// EventTypes returns the event types routed to HandleEvent
	EventTypes() []event.EventType

	// HandleEvent processes a single routed event
	HandleEvent(ev event.GameEvent)

	// Update advances the system by World.Time.Delta
	Update()
}
