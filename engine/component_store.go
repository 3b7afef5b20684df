package engine

import (
	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
)

// AnyStore is the type-erased view World uses to destroy and clear entities across stores
type AnyStore interface {
	RemoveComponent(e core.Entity)
	HasComponent(e core.Entity) bool
	CountEntity() int
	ClearAllComponent()
}

// ComponentStore holds every typed store of the world
type ComponentStore struct {
	Hostile    *Store[component.HostileComponent]
	Door       *Store[component.DoorComponent]
	Projectile *Store[component.ProjectileComponent]
}

// initComponentStores creates the stores and registers them for uniform lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Hostile:    NewStore[component.HostileComponent](),
		Door:       NewStore[component.DoorComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
	}
	w.allStores = []AnyStore{
		w.Components.Hostile,
		w.Components.Door,
		w.Components.Projectile,
	}
}

func (w *World) removeFromAllStores(e core.Entity) {
	for _, s := range w.allStores {
		s.RemoveComponent(e)
	}
}

func (w *World) clearAllStores() {
	for _, s := range w.allStores {
		s.ClearAllComponent()
	}
}
