package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/vmath"
)

func doorEvents(rec *recorder) []event.EventType {
	var out []event.EventType
	for _, ev := range rec.events {
		switch ev.Type {
		case event.EventDoorOpening, event.EventDoorOpened, event.EventDoorClosing, event.EventDoorClosed:
			out = append(out, ev.Type)
		}
	}
	return out
}

func TestOpenNearestRange(t *testing.T) {
	w, sys, _ := newBareWorld(t)

	assert.False(t, sys.Door.OpenNearest(vmath.V2(0, 15)), "door 1 is exactly 5 away")
	assert.False(t, sys.Door.OpenNearest(vmath.V2(0, 14)), "range is strict")

	require.True(t, sys.Door.OpenNearest(vmath.V2(0, 12)))
	_, d := door(t, w, 1)
	assert.Equal(t, core.DoorOpening, d.State)
	_, d = door(t, w, 2)
	assert.Equal(t, core.DoorClosed, d.State)

	assert.False(t, sys.Door.OpenNearest(vmath.V2(0, 12)), "already opening")
}

func TestOpenNearestPicksClosest(t *testing.T) {
	w, sys, _ := newBareWorld(t)

	require.True(t, sys.Door.OpenNearest(vmath.V2(1, 18.5)))
	_, d := door(t, w, 2)
	assert.Equal(t, core.DoorOpening, d.State)
	_, d = door(t, w, 1)
	assert.Equal(t, core.DoorClosed, d.State)
}

func TestDoorFullCycleEvents(t *testing.T) {
	w, _, rec := newBareWorld(t)
	w.Session.Position = vmath.V2(0, 12)

	w.PushEvent(event.EventDoorOpenRequest, nil)
	tickN(w, 1)
	_, d := door(t, w, 1)
	assert.Equal(t, core.DoorOpening, d.State)

	tickN(w, 33)
	_, d = door(t, w, 1)
	assert.Equal(t, core.DoorOpen, d.State)
	assert.True(t, w.GapOpen(1))

	tickN(w, 600)
	_, d = door(t, w, 1)
	assert.Equal(t, core.DoorClosed, d.State)
	assert.False(t, w.GapOpen(1))

	assert.Equal(t, []event.EventType{
		event.EventDoorOpening,
		event.EventDoorOpened,
		event.EventDoorClosing,
		event.EventDoorClosed,
	}, doorEvents(rec))

	for _, ev := range rec.events {
		if p, ok := ev.Payload.(*event.DoorPayload); ok {
			assert.Equal(t, "door_0_1", p.ID)
			assert.Equal(t, 1, p.Boundary)
		}
	}
}

func TestDoorCloseOnlyWhenOpen(t *testing.T) {
	w, sys, _ := newBareWorld(t)
	e, _ := door(t, w, 3)

	assert.False(t, sys.Door.Close(e), "closed door")
	require.True(t, sys.Door.Open(e))
	assert.False(t, sys.Door.Close(e), "opening door")

	tickN(w, 40)
	require.True(t, sys.Door.Close(e))
	_, d := door(t, w, 3)
	assert.Equal(t, core.DoorClosing, d.State)
	assert.False(t, sys.Door.Open(e), "closing door")

	tickN(w, 30)
	_, d = door(t, w, 3)
	assert.Equal(t, core.DoorClosed, d.State)
}

func TestDoorRequestIgnoredAfterGameOver(t *testing.T) {
	w, sys, _ := newBareWorld(t)
	w.DamagePlayer(w.Session.Health)
	assert.False(t, sys.Door.OpenNearest(vmath.V2(0, 12)))
}

func TestDoorAutoCloseWaitsForClearGap(t *testing.T) {
	w, sys, rec := newBareWorld(t)
	e, _ := door(t, w, 1)
	require.True(t, sys.Door.Open(e))
	tickN(w, 34)

	// Player standing in the doorway
	w.Session.Position = vmath.V2(0, 10)
	tickN(w, 600)
	_, d := door(t, w, 1)
	assert.Equal(t, core.DoorOpen, d.State, "door must not close on the player")
	assert.Zero(t, rec.count(event.EventDoorClosing))

	// Still able to walk out into room 1
	w.Session.Keys = event.MoveKeys(0).With(event.MoveBackward)
	tickN(w, 60)
	w.Session.Keys = 0
	require.Greater(t, w.Session.Position.Z, 11.0)

	tickN(w, 600)
	_, d = door(t, w, 1)
	assert.Equal(t, core.DoorClosed, d.State)
	assert.Equal(t, 1, rec.count(event.EventDoorClosed))
}
