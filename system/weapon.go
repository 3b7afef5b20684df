package system

import (
	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// WeaponSystem owns the zapper charge cycle, zap strikes and pamphlet throws
type WeaponSystem struct {
	world *engine.World
}

func NewWeaponSystem(world *engine.World) *WeaponSystem {
	s := &WeaponSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventZapRequest,
		event.EventPamphletRequest,
	}
}

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventZapRequest:
		s.FireZapper()
	case event.EventPamphletRequest:
		s.FirePamphlet()
	}
}

// FireZapper consumes a full charge and starts the jab, damage lands at peak extension
// Returns false when not ready or the game is over
func (s *WeaponSystem) FireZapper() bool {
	session := &s.world.Session
	if session.GameOver || !session.ZapReady {
		return false
	}

	session.ZapReady = false
	session.ZapCharge = 0
	session.ZapJabRemaining = parameter.ZapJabDuration
	session.ZapStrikePending = true

	s.world.PushEvent(event.EventZapFired, nil)
	return true
}

// FirePamphlet spends one pamphlet and throws it along the negated camera forward
// Returns false with no ammo or once the game is over
func (s *WeaponSystem) FirePamphlet() bool {
	session := &s.world.Session
	if session.GameOver || session.Ammo <= 0 {
		return false
	}

	session.Ammo--
	pos := session.Position
	e := s.world.SpawnProjectile(component.ProjectileComponent{
		Kind:         core.ProjectilePamphlet,
		Position:     pos,
		Direction:    session.Forward().Neg(),
		Speed:        parameter.PamphletStartSpeed,
		TargetSpeed:  parameter.PamphletTargetSpeed,
		Acceleration: parameter.PamphletAcceleration,
		TicksLeft:    parameter.PamphletLifetimeTicks,
	})

	s.world.PushEvent(event.EventPamphletFired, &event.ProjectilePayload{
		Projectile: e,
		Kind:       core.ProjectilePamphlet,
		X:          pos.X,
		Z:          pos.Z,
	})
	return true
}

func (s *WeaponSystem) Update() {
	session := &s.world.Session
	dt := s.world.Time.Delta

	if !session.GameOver && !session.ZapReady {
		session.ZapCharge += float64(dt) / float64(parameter.ZapRechargeDuration)
		if session.ZapCharge >= 1.0 {
			session.ZapCharge = 1.0
			session.ZapReady = true
			s.world.PushEvent(event.EventZapReady, nil)
		}
	}

	if session.ZapJabRemaining <= 0 {
		return
	}
	session.ZapJabRemaining -= dt
	if session.ZapJabRemaining < 0 {
		session.ZapJabRemaining = 0
	}
	if session.ZapStrikePending && parameter.ZapJabDuration-session.ZapJabRemaining >= parameter.ZapStrikeDelay {
		session.ZapStrikePending = false
		s.strike()
	}
}

// strike damages every living hostile within ZapRange of the player
// The target set is fixed before any damage is applied
func (s *WeaponSystem) strike() {
	origin := s.world.TickStart.Player

	var targets []core.Entity
	for _, e := range s.world.Components.Hostile.GetAllEntities() {
		at, ok := s.world.TickStart.Hostiles[e]
		if !ok {
			continue
		}
		if vmath.Dist(origin, at) < parameter.ZapRange {
			targets = append(targets, e)
		}
	}

	killed := 0
	for _, e := range targets {
		h, ok := s.world.Components.Hostile.GetComponent(e)
		if !ok || !h.TakeDamage(parameter.ZapDamage) {
			continue
		}
		s.world.Components.Hostile.SetComponent(e, h)

		payload := &event.EntityPayload{
			Entity: e,
			Kind:   h.Profile.Kind,
			Tag:    h.Tag,
			Health: h.Health,
			X:      h.Position.X,
			Z:      h.Position.Z,
		}
		if h.Dying() {
			killed++
			s.world.Logger.Debug().Str("hostile", h.Tag).Msg("hostile dying")
			s.world.PushEvent(event.EventEntityDied, payload)
		} else {
			s.world.PushEvent(event.EventEntityHurt, payload)
		}
	}

	s.world.PushEvent(event.EventZapStrike, &event.ZapStrikePayload{Targets: targets, Killed: killed})
}
