package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Move   event.MoveKey // Non-zero for held movement keys
	Turn   float64       // Yaw step for IntentTurn
}

// KeyTable maps tcell keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyUp:     {Move: event.MoveForward},
			tcell.KeyDown:   {Move: event.MoveBackward},
			tcell.KeyLeft:   {Intent: IntentTurn, Turn: -parameter.TurnStep},
			tcell.KeyRight:  {Intent: IntentTurn, Turn: parameter.TurnStep},
		},
		Runes: map[rune]KeyEntry{
			'w': {Move: event.MoveForward},
			's': {Move: event.MoveBackward},
			'a': {Move: event.MoveLeft},
			'd': {Move: event.MoveRight},
			'q': {Intent: IntentTurn, Turn: -parameter.TurnStep},
			'e': {Intent: IntentTurn, Turn: parameter.TurnStep},
			'f': {Intent: IntentZap},
			'g': {Intent: IntentPamphlet},
			' ': {Intent: IntentOpenDoor},
			'p': {Intent: IntentToggleNoClip},
			'r': {Intent: IntentRestart},
		},
	}
}

// Lookup returns the entry for a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		entry, ok := t.Runes[r]
		return entry, ok
	}
	entry, ok := t.SpecialKeys[ev.Key()]
	return entry, ok
}
