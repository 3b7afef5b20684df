package event

import (
	"testing"

	"github.com/lixenwraith/corridor/parameter"
)

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventZapFired, Tick: 1})
	eq.Push(GameEvent{Type: EventZapStrike, Tick: 2})
	eq.Push(GameEvent{Type: EventDoorOpening, Tick: 3})

	if eq.Len() != 3 {
		t.Errorf("Expected 3 pending, got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	// FIFO order
	want := []EventType{EventZapFired, EventZapStrike, EventDoorOpening}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d mismatch: got %v, want %v", i, ev.Type, want[i])
		}
	}

	if events2 := eq.Consume(); len(events2) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(events2))
	}
}

// TestEventQueueOverflow tests that the oldest events are overwritten
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventBoltFired, Tick: uint64(i)})
	}

	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Tick != 10 {
		t.Errorf("Expected oldest surviving tick 10, got %d", events[0].Tick)
	}
	if events[len(events)-1].Tick != uint64(total-1) {
		t.Errorf("Expected newest tick %d, got %d", total-1, events[len(events)-1].Tick)
	}
	if eq.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", eq.Dropped())
	}
}

func TestEventQueueReset(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventGameOver})
	eq.Reset()

	if eq.Len() != 0 {
		t.Errorf("Expected empty queue after reset, got %d", eq.Len())
	}
}

func TestEventNames(t *testing.T) {
	for _, et := range Types() {
		name := et.String()
		if name == "" || name == "unknown" {
			t.Errorf("Event type %d has no name", et)
			continue
		}
		back, ok := GetEventType(name)
		if !ok || back != et {
			t.Errorf("Round trip failed for %q", name)
		}
	}
}

func TestGameEventKey(t *testing.T) {
	ev := GameEvent{Type: EventEntityDied, Payload: &EntityPayload{Kind: 3}}
	if got := ev.Key(); got != "entity-died/trooper" {
		t.Errorf("Expected per-kind key, got %q", got)
	}

	ev = GameEvent{Type: EventZapFired}
	if got := ev.Key(); got != "zap-fired" {
		t.Errorf("Expected plain key, got %q", got)
	}
	if ev.Volume() != 1 {
		t.Errorf("Expected default volume 1, got %v", ev.Volume())
	}

	ev = GameEvent{Type: EventBoltFired, Payload: &ProjectilePayload{Loudness: 0.25}}
	if ev.Volume() != 0.25 {
		t.Errorf("Expected volume hint 0.25, got %v", ev.Volume())
	}
}

func TestMoveKeys(t *testing.T) {
	var k MoveKeys
	k = k.With(MoveForward).With(MoveLeft)
	if !k.Has(MoveForward) || !k.Has(MoveLeft) || k.Has(MoveRight) {
		t.Errorf("Unexpected key set %08b", k)
	}
	k = k.Without(MoveForward)
	if k.Has(MoveForward) {
		t.Errorf("Expected forward released")
	}
}
