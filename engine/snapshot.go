package engine

import (
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/vmath"
)

// TickStart is the consistent view cross-entity interactions read during a tick
type TickStart struct {
	Player   vmath.Vec2
	Hostiles map[core.Entity]vmath.Vec2 // Non-dying units only
}

func (w *World) captureTickStart() {
	if w.TickStart.Hostiles == nil {
		w.TickStart.Hostiles = make(map[core.Entity]vmath.Vec2)
	} else {
		clear(w.TickStart.Hostiles)
	}

	w.TickStart.Player = w.Session.Position
	for _, e := range w.Components.Hostile.GetAllEntities() {
		h, ok := w.Components.Hostile.GetComponent(e)
		if !ok || h.Dying() {
			continue
		}
		w.TickStart.Hostiles[e] = h.Position
	}
}

// ActorView is the render-facing state of a hostile
type ActorView struct {
	Entity    core.Entity
	Tag       string
	Kind      core.Kind
	State     core.HostileState
	X, Z      float64
	Facing    float64
	Opacity   float64
	Radius    float64
	Converted bool
	Flash     bool
	VisualKey string
}

// DoorView is the render-facing state of a door
type DoorView struct {
	ID        string
	X, Z      float64
	State     core.DoorState
	Height    float64
	VisualKey string
}

// ProjectileView is the render-facing state of a projectile
type ProjectileView struct {
	Kind      core.ProjectileKind
	X, Z      float64
	Facing    float64
	VisualKey string
}

// HUD carries the session values displayed to the player
type HUD struct {
	Health    int
	MaxHealth int
	Ammo      int
	Charge    float64
	Ready     bool
	Jabbing   bool
	GameOver  bool
	NoClip    bool
}

// Snapshot is a copy of everything a renderer needs for one frame
type Snapshot struct {
	Tick        uint64
	Player      vmath.Vec2
	Yaw         float64
	Room        int
	Actors      []ActorView
	Doors       []DoorView
	Projectiles []ProjectileView
	HUD         HUD
}

// Snapshot copies the current state for the render collaborator
// The result shares no memory with the world
func (w *World) Snapshot() Snapshot {
	s := &w.Session
	snap := Snapshot{
		Tick:   w.Time.Tick,
		Player: s.Position,
		Yaw:    s.Yaw,
		Room:   w.Layout.RoomIndex(s.Position.Z),
		HUD: HUD{
			Health:    s.Health,
			MaxHealth: s.MaxHealth,
			Ammo:      s.Ammo,
			Charge:    s.ZapCharge,
			Ready:     s.ZapReady,
			Jabbing:   s.ZapJabRemaining > 0,
			GameOver:  s.GameOver,
			NoClip:    s.NoClip,
		},
	}

	for _, e := range w.Components.Hostile.GetAllEntities() {
		h, ok := w.Components.Hostile.GetComponent(e)
		if !ok {
			continue
		}
		snap.Actors = append(snap.Actors, ActorView{
			Entity:    e,
			Tag:       h.Tag,
			Kind:      h.Profile.Kind,
			State:     h.State,
			X:         h.Position.X,
			Z:         h.Position.Z,
			Facing:    h.Facing,
			Opacity:   h.Opacity,
			Radius:    h.Profile.Radius,
			Converted: h.Converted,
			Flash:     h.MuzzleFlash > 0,
			VisualKey: h.VisualKey(),
		})
	}

	for _, e := range w.Components.Door.GetAllEntities() {
		d, ok := w.Components.Door.GetComponent(e)
		if !ok {
			continue
		}
		snap.Doors = append(snap.Doors, DoorView{
			ID:        d.ID,
			X:         d.Position.X,
			Z:         d.Position.Z,
			State:     d.State,
			Height:    d.Height,
			VisualKey: d.VisualKey(),
		})
	}

	for _, e := range w.Components.Projectile.GetAllEntities() {
		p, ok := w.Components.Projectile.GetComponent(e)
		if !ok {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Kind:      p.Kind,
			X:         p.Position.X,
			Z:         p.Position.Z,
			Facing:    p.Facing(),
			VisualKey: p.VisualKey(),
		})
	}

	return snap
}
