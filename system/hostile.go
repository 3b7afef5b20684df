package system

import (
	"math"
	"time"

	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// HostileSystem runs patrol, pursuit, attack and idle animation for every living hostile
type HostileSystem struct {
	world *engine.World

	// roll returns the hit roll in [0, 1), a hit lands when roll < chance
	roll func() float64
}

func NewHostileSystem(world *engine.World) *HostileSystem {
	s := &HostileSystem{
		world: world,
		roll:  world.Rand.Float64,
	}
	s.Init()
	return s
}

func (s *HostileSystem) Init() {}

// SetRoll replaces the attack roll source
func (s *HostileSystem) SetRoll(roll func() float64) {
	s.roll = roll
}

func (s *HostileSystem) Name() string {
	return "hostile"
}

func (s *HostileSystem) Priority() int {
	return parameter.PriorityHostile
}

func (s *HostileSystem) EventTypes() []event.EventType {
	return nil
}

func (s *HostileSystem) HandleEvent(ev event.GameEvent) {}

func (s *HostileSystem) Update() {
	dt := s.world.Time.Delta
	player := s.world.TickStart.Player

	for _, e := range s.world.Components.Hostile.GetAllEntities() {
		h, ok := s.world.Components.Hostile.GetComponent(e)
		if !ok || h.Dying() {
			continue
		}

		s.tickTimers(&h, dt)
		s.move(&h, player, dt)
		h.Facing = vmath.Heading(h.Position, player)

		if s.canFire(&h, player) {
			s.fire(e, &h, player)
		}

		s.animate(&h, dt)
		s.world.Components.Hostile.SetComponent(e, h)
	}
}

func (s *HostileSystem) tickTimers(h *component.HostileComponent, dt time.Duration) {
	if h.AttackCooldown > 0 {
		h.AttackCooldown -= dt
	}
	if h.MuzzleFlash > 0 {
		h.MuzzleFlash -= dt
	}
	if h.State == core.StateAttacking {
		h.AttackDisplay -= dt
		if h.AttackDisplay <= 0 {
			h.AttackDisplay = 0
			h.State = core.StateAggressive
		}
	}
}

// move steps toward the patrol target or the player, clamped to the home room interior
func (s *HostileSystem) move(h *component.HostileComponent, player vmath.Vec2, dt time.Duration) {
	var target vmath.Vec2
	var speed float64

	if h.Engaged() {
		if vmath.Dist(h.Position, player) <= parameter.AggressiveStandoff {
			return
		}
		target, speed = player, h.Profile.AggressiveSpeed
	} else {
		h.PatrolTimer -= dt
		if h.PatrolTimer <= 0 || vmath.Dist(h.Position, h.PatrolTarget) < parameter.PatrolArrivalRadius {
			h.PatrolTarget = s.patrolTarget(h.HomeRoom)
			h.PatrolTimer = s.world.PatrolInterval()
		}
		target, speed = h.PatrolTarget, h.Profile.PatrolSpeed
	}

	if speed == 0 {
		return
	}

	dir := target.Sub(h.Position).Normalize()
	interior := s.world.Layout.Interior(h.HomeRoom, parameter.RoomInteriorHalfWidth, parameter.RoomInteriorMargin)
	h.Position = interior.Clamp(h.Position.AddScaled(dir, speed))
}

// patrolTarget picks a random point inside a room's patrol area
func (s *HostileSystem) patrolTarget(room int) vmath.Vec2 {
	area := s.world.Layout.Interior(room, parameter.RoomInteriorHalfWidth, parameter.PatrolMargin)
	return vmath.V2(
		s.world.Rand.Range(area.MinX, area.MaxX),
		s.world.Rand.Range(area.MinZ, area.MaxZ),
	)
}

func (s *HostileSystem) canFire(h *component.HostileComponent, player vmath.Vec2) bool {
	if s.world.Session.GameOver || !h.Profile.CanAttack() || !h.Engaged() {
		return false
	}
	if h.AttackCooldown > 0 {
		return false
	}
	return vmath.Dist(h.Position, player) <= h.Profile.AttackRange
}

// fire spawns a bolt and resolves the hit roll at once, the bolt itself is cosmetic
func (s *HostileSystem) fire(e core.Entity, h *component.HostileComponent, player vmath.Vec2) {
	dist := vmath.Dist(h.Position, player)

	dir := player.Sub(h.Position).Normalize()
	dir.X += (s.world.Rand.Float64() - 0.5) * parameter.BoltSpread
	dir.Z += (s.world.Rand.Float64() - 0.5) * parameter.BoltSpread
	dir = dir.Normalize()

	bolt := s.world.SpawnProjectile(component.ProjectileComponent{
		Kind:        core.ProjectileBolt,
		Owner:       e,
		Position:    h.Position,
		Direction:   dir,
		Speed:       parameter.BoltSpeed,
		Origin:      h.Position,
		MaxDistance: parameter.BoltMaxDistance,
	})
	s.world.PushEvent(event.EventBoltFired, &event.ProjectilePayload{
		Projectile: bolt,
		Kind:       core.ProjectileBolt,
		Owner:      e,
		X:          h.Position.X,
		Z:          h.Position.Z,
		Loudness:   vmath.Clamp(1-dist/(2*h.Profile.AttackRange), 0.2, 1),
	})

	h.State = core.StateAttacking
	h.AttackDisplay = parameter.AttackDisplayDuration
	h.MuzzleFlash = parameter.MuzzleFlashDuration
	h.AttackCooldown = h.Profile.AttackCooldown

	chance := math.Max(parameter.AttackMinHitChance, 1-dist/h.Profile.AttackRange)
	payload := &event.PlayerHitPayload{
		Source:   e,
		Kind:     h.Profile.Kind,
		Distance: dist,
		Chance:   chance,
	}

	if s.roll() < chance {
		payload.Health = max(0, s.world.Session.Health-parameter.HostileHitDamage)
		s.world.PushEvent(event.EventPlayerHit, payload)
		s.world.DamagePlayer(parameter.HostileHitDamage)
		s.world.Logger.Debug().Str("hostile", h.Tag).Int("health", s.world.Session.Health).Msg("player hit")
		return
	}

	payload.Health = s.world.Session.Health
	s.world.PushEvent(event.EventPlayerMissed, payload)
}

// animate cycles idle frames, holding the frame while the attack pose is shown
func (s *HostileSystem) animate(h *component.HostileComponent, dt time.Duration) {
	if h.State == core.StateAttacking || h.Profile.IdleFrames == 0 {
		return
	}
	h.FrameTimer += dt
	for h.FrameTimer >= h.Profile.IdleFrameTime {
		h.FrameTimer -= h.Profile.IdleFrameTime
		h.Frame = (h.Frame + 1) % h.Profile.IdleFrames
	}
}
