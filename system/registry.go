package system

import (
	"github.com/lixenwraith/corridor/engine"
)

// Systems holds typed handles to every registered simulation system
type Systems struct {
	Session    *SessionSystem
	Weapon     *WeaponSystem
	Movement   *MovementSystem
	Hostile    *HostileSystem
	Death      *DeathSystem
	Projectile *ProjectileSystem
	Door       *DoorSystem
}

// Register creates every system and adds it to the world
func Register(world *engine.World) *Systems {
	s := &Systems{
		Session:    NewSessionSystem(world),
		Weapon:     NewWeaponSystem(world),
		Movement:   NewMovementSystem(world),
		Hostile:    NewHostileSystem(world),
		Death:      NewDeathSystem(world),
		Projectile: NewProjectileSystem(world),
		Door:       NewDoorSystem(world),
	}

	for _, sys := range s.All() {
		world.AddSystem(sys)
	}
	return s
}

// All returns the systems in registration order
func (s *Systems) All() []engine.System {
	return []engine.System{s.Session, s.Weapon, s.Movement, s.Hostile, s.Death, s.Projectile, s.Door}
}
