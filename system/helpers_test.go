package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/vmath"
)

const testTick = 10 * time.Millisecond

// recorder collects every flushed event
type recorder struct {
	events []event.GameEvent
}

func (r *recorder) OnEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

// newBareWorld returns a world with doors but no hostiles, player at the start position
func newBareWorld(t *testing.T) (*engine.World, *Systems, *recorder) {
	t.Helper()
	w := engine.NewWorld(engine.WithSeed(42))
	sys := Register(w)
	rec := &recorder{}
	w.AddListener(rec)
	for b := 1; b <= w.Layout.Boundaries(); b++ {
		w.SpawnDoor(b)
	}
	return w, sys, rec
}

// newPopulatedWorld returns a world with the full starting layout
func newPopulatedWorld(t *testing.T) (*engine.World, *Systems, *recorder) {
	t.Helper()
	w := engine.NewWorld(engine.WithSeed(42))
	sys := Register(w)
	rec := &recorder{}
	w.AddListener(rec)
	w.InitSession()
	w.Flush()
	return w, sys, rec
}

func tickN(w *engine.World, n int) {
	for i := 0; i < n; i++ {
		w.Tick(testTick)
	}
}

func spawn(t *testing.T, w *engine.World, kind core.Kind, x, z float64) core.Entity {
	t.Helper()
	e, ok := w.SpawnHostile(kind, kind.String(), vmath.V2(x, z))
	require.True(t, ok)
	return e
}

func hostile(t *testing.T, w *engine.World, e core.Entity) component.HostileComponent {
	t.Helper()
	h, ok := w.Components.Hostile.GetComponent(e)
	require.True(t, ok, "hostile %d missing", e)
	return h
}

func mutateHostile(t *testing.T, w *engine.World, e core.Entity, fn func(h *component.HostileComponent)) {
	t.Helper()
	h := hostile(t, w, e)
	fn(&h)
	w.Components.Hostile.SetComponent(e, h)
}

func door(t *testing.T, w *engine.World, boundary int) (core.Entity, component.DoorComponent) {
	t.Helper()
	e, ok := w.DoorAt(boundary)
	require.True(t, ok)
	d, ok := w.Components.Door.GetComponent(e)
	require.True(t, ok)
	return e, d
}
