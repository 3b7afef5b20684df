package system

import (
	"github.com/lixenwraith/corridor/arena"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// MovementSystem integrates player velocity and resolves collisions with walls, doors and hostiles
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) *MovementSystem {
	s := &MovementSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMoveKeysRequest,
		event.EventTurnRequest,
	}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	session := &s.world.Session
	if session.GameOver {
		return
	}

	switch ev.Type {
	case event.EventMoveKeysRequest:
		if payload, ok := ev.Payload.(*event.MoveKeysPayload); ok {
			session.Keys = payload.Keys
		}

	case event.EventTurnRequest:
		if payload, ok := ev.Payload.(*event.TurnPayload); ok {
			session.Yaw += payload.Delta
		}
	}
}

func (s *MovementSystem) Update() {
	session := &s.world.Session
	if session.GameOver {
		return
	}

	session.Velocity = session.Velocity.Add(acceleration(session.Keys, session.Yaw)).Scale(parameter.Friction)
	candidate := session.Position.Add(session.Velocity)

	if session.NoClip {
		session.Position = candidate
		return
	}

	if e, ok := s.firstOverlap(candidate); ok {
		s.push(e)
		return
	}

	if s.world.CheckBounds(candidate) && s.clearOfHostiles(candidate) && arena.WithinWorld(candidate) {
		session.Position = candidate
		return
	}
	session.Velocity = session.Velocity.Scale(parameter.RejectDamping)
}

// acceleration maps held keys to a yaw-relative acceleration
// Forward accelerates along -forward, matching the camera convention
func acceleration(keys event.MoveKeys, yaw float64) vmath.Vec2 {
	forward := vmath.Forward(yaw)
	right := vmath.Right(yaw)

	var acc vmath.Vec2
	if keys.Has(event.MoveForward) {
		acc = acc.AddScaled(forward, -parameter.MoveSpeed)
	}
	if keys.Has(event.MoveBackward) {
		acc = acc.AddScaled(forward, parameter.MoveSpeed)
	}
	if keys.Has(event.MoveLeft) {
		acc = acc.AddScaled(right, -parameter.MoveSpeed)
	}
	if keys.Has(event.MoveRight) {
		acc = acc.AddScaled(right, parameter.MoveSpeed)
	}
	return acc
}

// firstOverlap returns the first non-dying hostile, in store order, whose circle contains p
func (s *MovementSystem) firstOverlap(p vmath.Vec2) (core.Entity, bool) {
	for _, e := range s.world.Components.Hostile.GetAllEntities() {
		h, ok := s.world.Components.Hostile.GetComponent(e)
		if !ok || h.Dying() {
			continue
		}
		if vmath.Dist(p, h.Position) < parameter.PlayerCollisionRadius+h.Profile.Radius {
			return e, true
		}
	}
	return 0, false
}

func (s *MovementSystem) clearOfHostiles(p vmath.Vec2) bool {
	_, overlap := s.firstOverlap(p)
	return !overlap
}

// push displaces hostile e away from the player
// When the hostile can move the player follows at reduced speed, otherwise the player is damped
func (s *MovementSystem) push(e core.Entity) {
	session := &s.world.Session
	h, ok := s.world.Components.Hostile.GetComponent(e)
	if !ok {
		return
	}

	dir := h.Position.Sub(session.Position).Normalize()
	displaced := h.Position.AddScaled(dir, parameter.MoveSpeed*parameter.PushDisplacementFactor)

	if !s.world.CheckBounds(displaced) {
		session.Velocity = session.Velocity.Scale(parameter.PushBlockedDamping)
		return
	}

	h.Position = displaced
	s.world.Components.Hostile.SetComponent(e, h)

	follow := session.Position.AddScaled(session.Velocity, parameter.PushSpeedMultiplier)
	if s.world.CheckBounds(follow) && arena.WithinWorld(follow) {
		session.Position = follow
	} else {
		session.Velocity = vmath.Vec2{}
	}
}
