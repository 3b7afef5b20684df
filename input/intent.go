package input

import (
	"github.com/lixenwraith/corridor/event"
)

// IntentType discriminates player actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Simulation intents
	IntentMoveKeys     // Held movement key set changed
	IntentTurn         // Yaw delta
	IntentZap          // Left mouse, F
	IntentPamphlet     // Right mouse, G
	IntentOpenDoor     // Space
	IntentToggleNoClip // P
	IntentRestart      // R

	// Process intents, never reach the world
	IntentQuit   // Ctrl+C, Ctrl+Q, Esc
	IntentResize // Terminal resize
)

// Intent is a parsed player action
// Pure data: no engine dependencies beyond event payload types
type Intent struct {
	Type  IntentType
	Keys  event.MoveKeys // IntentMoveKeys: the full held set
	Delta float64        // IntentTurn: radians
}

// Submitter accepts intents on behalf of the world
// Implemented by engine.World for synchronous use and engine.ClockScheduler across goroutines
type Submitter interface {
	PushEvent(eventType event.EventType, payload any)
}

// Submit forwards in to s as its event form
// Returns false for intents that have no simulation meaning
func Submit(s Submitter, in Intent) bool {
	switch in.Type {
	case IntentMoveKeys:
		s.PushEvent(event.EventMoveKeysRequest, &event.MoveKeysPayload{Keys: in.Keys})
	case IntentTurn:
		s.PushEvent(event.EventTurnRequest, &event.TurnPayload{Delta: in.Delta})
	case IntentZap:
		s.PushEvent(event.EventZapRequest, nil)
	case IntentPamphlet:
		s.PushEvent(event.EventPamphletRequest, nil)
	case IntentOpenDoor:
		s.PushEvent(event.EventDoorOpenRequest, nil)
	case IntentToggleNoClip:
		s.PushEvent(event.EventNoClipToggle, nil)
	case IntentRestart:
		s.PushEvent(event.EventGameReset, nil)
	default:
		return false
	}
	return true
}
