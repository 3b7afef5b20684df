package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
)

// DefaultHoldWindow is how long a movement key stays held after its last press or repeat
// Terminals report no key release, auto-repeat keeps the key alive
const DefaultHoldWindow = parameter.KeyHoldWindow

// Machine turns tcell events into intents, synthesizing held movement keys
type Machine struct {
	keyTable   *KeyTable
	holdWindow time.Duration

	held     map[event.MoveKey]time.Time
	lastKeys event.MoveKeys

	// Button mask of the previous mouse event, drag and motion reports repeat it
	lastButtons tcell.ButtonMask
}

// NewMachine creates an input machine with the default key table
func NewMachine() *Machine {
	return &Machine{
		keyTable:   DefaultKeyTable(),
		holdWindow: DefaultHoldWindow,
		held:       make(map[event.MoveKey]time.Time),
	}
}

// SetHoldWindow overrides the movement key release timeout
func (m *Machine) SetHoldWindow(d time.Duration) {
	if d > 0 {
		m.holdWindow = d
	}
}

// Reset releases every held key without emitting
func (m *Machine) Reset() {
	clear(m.held)
	m.lastKeys = 0
	m.lastButtons = tcell.ButtonNone
}

// Process parses a tcell event at time now
// Returns nil for events that map to nothing
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev, now)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) *Intent {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok {
		return nil
	}

	if entry.Move != 0 {
		m.held[entry.Move] = now
		return m.keysChanged()
	}

	switch entry.Intent {
	case IntentTurn:
		return &Intent{Type: IntentTurn, Delta: entry.Turn}
	case IntentNone:
		return nil
	}
	return &Intent{Type: entry.Intent}
}

// processMouse fires once per button press, only on the up-to-down edge
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	buttons := ev.Buttons()
	pressed := buttons &^ m.lastButtons
	m.lastButtons = buttons

	switch {
	case pressed&tcell.Button1 != 0:
		return &Intent{Type: IntentZap}
	case pressed&tcell.Button2 != 0:
		return &Intent{Type: IntentPamphlet}
	}
	return nil
}

// Expire releases keys not refreshed within the hold window
// Returns a move-keys intent when the held set shrank
func (m *Machine) Expire(now time.Time) *Intent {
	for key, seen := range m.held {
		if now.Sub(seen) >= m.holdWindow {
			delete(m.held, key)
		}
	}
	return m.keysChanged()
}

// Held returns the current held key set
func (m *Machine) Held() event.MoveKeys {
	return m.lastKeys
}

func (m *Machine) keysChanged() *Intent {
	var keys event.MoveKeys
	for key := range m.held {
		keys = keys.With(key)
	}
	if keys == m.lastKeys {
		return nil
	}
	m.lastKeys = keys
	return &Intent{Type: IntentMoveKeys, Keys: keys}
}
