package system

import (
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
)

// DeathSystem plays death animations, fades dying hostiles out and removes them
type DeathSystem struct {
	world *engine.World
}

func NewDeathSystem(world *engine.World) *DeathSystem {
	s := &DeathSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *DeathSystem) Init() {}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return nil
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {}

func (s *DeathSystem) Update() {
	dt := s.world.Time.Delta

	for _, e := range s.world.Components.Hostile.GetAllEntities() {
		h, ok := s.world.Components.Hostile.GetComponent(e)
		if !ok || h.State != core.StateDying {
			continue
		}

		// Frames first, fade only after the last frame has played
		if !h.DeathAnimationDone() {
			h.DeathTimer += dt
			for h.DeathTimer >= parameter.DeathFrameInterval && !h.DeathAnimationDone() {
				h.DeathTimer -= parameter.DeathFrameInterval
				h.DeathFrame++
			}
			s.world.Components.Hostile.SetComponent(e, h)
			continue
		}

		h.Opacity -= h.Profile.FadePerTick
		if h.Opacity > 0 {
			s.world.Components.Hostile.SetComponent(e, h)
			continue
		}

		h.Opacity = 0
		h.State = core.StateRemoved
		s.world.DestroyEntity(e)
		s.world.Logger.Debug().Str("hostile", h.Tag).Msg("hostile removed")
		s.world.PushEvent(event.EventEntityRemoved, &event.EntityPayload{
			Entity: e,
			Kind:   h.Profile.Kind,
			Tag:    h.Tag,
			X:      h.Position.X,
			Z:      h.Position.Z,
		})
	}
}
