package system

import (
	"math"

	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// DoorSystem runs every door's open/close animation and auto-close timer
type DoorSystem struct {
	world *engine.World
}

func NewDoorSystem(world *engine.World) *DoorSystem {
	s := &DoorSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *DoorSystem) Init() {}

func (s *DoorSystem) Name() string {
	return "door"
}

func (s *DoorSystem) Priority() int {
	return parameter.PriorityDoor
}

func (s *DoorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDoorOpenRequest,
	}
}

func (s *DoorSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventDoorOpenRequest {
		s.OpenNearest(s.world.Session.Position)
	}
}

// OpenNearest opens the closest door strictly within DoorInteractRange of pos
// Returns false when no door is in reach or the nearest one is not Closed
func (s *DoorSystem) OpenNearest(pos vmath.Vec2) bool {
	if s.world.Session.GameOver {
		return false
	}

	var nearest core.Entity
	nearestDist := math.Inf(1)
	for _, e := range s.world.Components.Door.GetAllEntities() {
		d, ok := s.world.Components.Door.GetComponent(e)
		if !ok {
			continue
		}
		dist := vmath.Dist(pos, d.Position)
		if dist < parameter.DoorInteractRange && dist < nearestDist {
			nearest, nearestDist = e, dist
		}
	}
	if nearest == 0 {
		return false
	}
	return s.Open(nearest)
}

// Open requests door e to open, no-op unless Closed
func (s *DoorSystem) Open(e core.Entity) bool {
	d, ok := s.world.Components.Door.GetComponent(e)
	if !ok || !d.Open() {
		return false
	}
	s.world.Components.Door.SetComponent(e, d)
	s.emit(event.EventDoorOpening, &d)
	return true
}

// Close requests door e to close, no-op unless Open
func (s *DoorSystem) Close(e core.Entity) bool {
	d, ok := s.world.Components.Door.GetComponent(e)
	if !ok || !d.Close() {
		return false
	}
	s.world.Components.Door.SetComponent(e, d)
	s.emit(event.EventDoorClosing, &d)
	return true
}

func (s *DoorSystem) Update() {
	dt := s.world.Time.Delta
	for _, e := range s.world.Components.Door.GetAllEntities() {
		d, ok := s.world.Components.Door.GetComponent(e)
		if !ok {
			continue
		}
		// Auto-close waits until the player has cleared the gap
		if d.State == core.DoorOpen && s.world.PlayerInGap(d.Boundary) {
			continue
		}

		state, changed := d.Advance(dt)
		s.world.Components.Door.SetComponent(e, d)
		if !changed {
			continue
		}

		switch state {
		case core.DoorOpen:
			s.emit(event.EventDoorOpened, &d)
		case core.DoorClosing:
			s.emit(event.EventDoorClosing, &d)
		case core.DoorClosed:
			s.emit(event.EventDoorClosed, &d)
		}
	}
}

func (s *DoorSystem) emit(t event.EventType, d *component.DoorComponent) {
	s.world.Logger.Debug().Str("door", d.ID).Str("state", d.State.String()).Msg("door transition")
	s.world.PushEvent(t, &event.DoorPayload{ID: d.ID, Boundary: d.Boundary, State: d.State})
}
