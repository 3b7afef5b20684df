package system

import (
	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// ProjectileSystem integrates pamphlets and bolts and resolves pamphlet conversions
type ProjectileSystem struct {
	world *engine.World
}

func NewProjectileSystem(world *engine.World) *ProjectileSystem {
	s := &ProjectileSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return nil
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {}

func (s *ProjectileSystem) Update() {
	for _, e := range s.world.Components.Projectile.GetAllEntities() {
		p, ok := s.world.Components.Projectile.GetComponent(e)
		if !ok {
			continue
		}

		var alive bool
		switch p.Kind {
		case core.ProjectilePamphlet:
			alive = s.updatePamphlet(e, &p)
		case core.ProjectileBolt:
			alive = s.updateBolt(e, &p)
		}

		if alive {
			s.world.Components.Projectile.SetComponent(e, p)
		} else {
			s.world.DestroyEntity(e)
		}
	}
}

// updatePamphlet ramps speed, moves and converts at most one hostile
func (s *ProjectileSystem) updatePamphlet(e core.Entity, p *component.ProjectileComponent) bool {
	if p.Speed < p.TargetSpeed {
		p.Speed = min(p.Speed+p.Acceleration, p.TargetSpeed)
	}
	p.Position = p.Position.Add(p.Velocity())
	p.TicksLeft--

	if target, ok := s.pamphletHit(p.Position); ok {
		h, _ := s.world.Components.Hostile.GetComponent(target)
		if h.Convert() {
			s.world.Components.Hostile.SetComponent(target, h)
			s.world.Logger.Debug().Str("hostile", h.Tag).Msg("hostile converted")
			s.world.PushEvent(event.EventEntityConverted, &event.EntityPayload{
				Entity: target,
				Kind:   h.Profile.Kind,
				Tag:    h.Tag,
				Health: h.Health,
				X:      h.Position.X,
				Z:      h.Position.Z,
			})
		}
		return false
	}

	return p.TicksLeft > 0
}

// pamphletHit returns the first living hostile, in store order, within hit radius of pos
// Positions come from the tick-start capture
func (s *ProjectileSystem) pamphletHit(pos vmath.Vec2) (core.Entity, bool) {
	for _, e := range s.world.Components.Hostile.GetAllEntities() {
		at, ok := s.world.TickStart.Hostiles[e]
		if !ok {
			continue
		}
		h, ok := s.world.Components.Hostile.GetComponent(e)
		if !ok || h.Dying() {
			continue
		}
		if vmath.Dist(pos, at) < parameter.PamphletHitRadius {
			return e, true
		}
	}
	return 0, false
}

// updateBolt moves at constant speed, ending near the player or past its range
func (s *ProjectileSystem) updateBolt(e core.Entity, p *component.ProjectileComponent) bool {
	p.Position = p.Position.Add(p.Velocity())

	player := s.world.TickStart.Player
	if vmath.Dist(p.Position, player) < parameter.BoltArrivalRadius {
		s.world.PushEvent(event.EventBoltArrived, &event.ProjectilePayload{
			Projectile: e,
			Kind:       p.Kind,
			Owner:      p.Owner,
			X:          p.Position.X,
			Z:          p.Position.Z,
		})
		return false
	}

	return vmath.Dist(p.Position, p.Origin) <= p.MaxDistance
}
