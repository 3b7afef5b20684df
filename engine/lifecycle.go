package engine

import (
	"fmt"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/vmath"
)

// Placement is one hostile of the fixed starting layout
type Placement struct {
	Kind core.Kind
	X, Z float64
}

// DefaultPlacements is the hardcoded population, two or three units per room
var DefaultPlacements = []Placement{
	{core.KindSmallDroid, -2, 3},
	{core.KindSmallDroid, 2, 6},
	{core.KindMidDroid, -2, 13},
	{core.KindMidDroid, 2, 16},
	{core.KindTrooper, -2, 23},
	{core.KindTrooper, 2, 26},
	{core.KindHeavyDroid, -2, 33},
	{core.KindHeavyDroid, 2, 36},
	{core.KindCreature, -2, 43},
	{core.KindCreature, 2, 46},
	{core.KindTrooper, -2, 53},
	{core.KindMidDroid, 2, 53},
	{core.KindCreature, 0, 56},
}

// InitSession populates doors and hostiles for every room and resets player state
func (w *World) InitSession() {
	w.Session = newSession(w.sessionConfig)

	for b := 1; b <= w.Layout.Boundaries(); b++ {
		w.SpawnDoor(b)
	}

	perRoom := make(map[int]int)
	for _, p := range DefaultPlacements {
		room := w.Layout.RoomIndex(p.Z)
		if room < 0 || room >= w.Layout.Rooms {
			continue
		}
		tag := fmt.Sprintf("%s_%d_%d", p.Kind, room, perRoom[room])
		perRoom[room]++
		w.SpawnHostile(p.Kind, tag, vmath.V2(p.X, p.Z))
	}

	w.Logger.Info().
		Int("hostiles", w.Components.Hostile.CountEntities()).
		Int("doors", w.Components.Door.CountEntities()).
		Msg("session initialized")

	w.PushEvent(event.EventSessionStarted, &event.SessionPayload{
		Health: w.Session.Health,
		Ammo:   w.Session.Ammo,
	})
}

// ResetSession tears down every entity, door and projectile and repopulates
// Timers live on the removed components so nothing scheduled survives
func (w *World) ResetSession() {
	w.Clear()
	w.TickStart = TickStart{}
	for _, s := range w.systems {
		s.Init()
	}
	w.Logger.Info().Uint64("tick", w.Time.Tick).Msg("session reset")
	w.InitSession()
}
