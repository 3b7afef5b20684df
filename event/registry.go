package event

var typeToName = [eventTypeCount]string{
	EventNone:            "none",
	EventMoveKeysRequest: "move-keys",
	EventTurnRequest:     "turn",
	EventZapRequest:      "zap-request",
	EventPamphletRequest: "pamphlet-request",
	EventDoorOpenRequest: "door-open-request",
	EventNoClipToggle:    "noclip-toggle",
	EventGameReset:       "game-reset",
	EventSessionStarted:  "session-started",
	EventPlayerHit:       "player-hit",
	EventPlayerMissed:    "player-missed",
	EventGameOver:        "game-over",
	EventNoClipChanged:   "noclip-changed",
	EventZapFired:        "zap-fired",
	EventZapStrike:       "zap-strike",
	EventZapReady:        "zap-ready",
	EventPamphletFired:   "pamphlet-fired",
	EventBoltFired:       "bolt-fired",
	EventBoltArrived:     "bolt-arrived",
	EventEntityHurt:      "entity-hurt",
	EventEntityConverted: "entity-converted",
	EventEntityDied:      "entity-died",
	EventEntityRemoved:   "entity-removed",
	EventDoorOpening:     "door-opening",
	EventDoorOpened:      "door-opened",
	EventDoorClosing:     "door-closing",
	EventDoorClosed:      "door-closed",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for et, name := range typeToName {
		m[name] = EventType(et)
	}
	return m
}()

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return typeToName[t]
	}
	return "unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// Types returns every emit-able event type
func Types() []EventType {
	types := make([]EventType, 0, eventTypeCount-1)
	for t := EventNone + 1; t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}
