package engine

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/corridor/arena"
	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// World contains all entities, their components, the session and the systems
// Single-threaded: every method must be called from the goroutine driving Tick
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	allStores  []AnyStore

	Session Session
	Time    TimeResource
	Layout  arena.Layout
	Rand    *vmath.FastRand
	Logger  zerolog.Logger

	// TickStart is captured after input dispatch, before any system runs
	TickStart TickStart

	sessionConfig SessionConfig
	doorByBound   map[int]core.Entity

	systems   []System
	router    *EventRouter
	queue     *event.EventQueue
	listeners []Listener
}

// Option configures a World at construction
type Option func(*World)

// WithLogger sets the world's structured logger
func WithLogger(l zerolog.Logger) Option {
	return func(w *World) { w.Logger = l }
}

// WithSeed seeds the world's random source
func WithSeed(seed uint64) Option {
	return func(w *World) { w.Rand = vmath.NewFastRand(seed) }
}

// WithSessionConfig overrides session starting values
func WithSessionConfig(cfg SessionConfig) Option {
	return func(w *World) { w.sessionConfig = cfg }
}

// WithLayout overrides the room layout
func WithLayout(l arena.Layout) Option {
	return func(w *World) { w.Layout = l }
}

// NewWorld creates an empty world, call InitSession to populate it
func NewWorld(opts ...Option) *World {
	w := &World{
		nextEntityID:  1,
		Layout:        arena.DefaultLayout(),
		Rand:          vmath.NewFastRand(uint64(time.Now().UnixNano())),
		Logger:        zerolog.Nop(),
		sessionConfig: DefaultSessionConfig(),
		doorByBound:   make(map[int]core.Entity),
		router:        NewEventRouter(),
		queue:         event.NewEventQueue(),
	}
	initComponentStores(w)

	for _, opt := range opts {
		opt(w)
	}

	w.Session = newSession(w.sessionConfig)
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	if d, ok := w.Components.Door.GetComponent(e); ok {
		delete(w.doorByBound, d.Boundary)
	}
	w.removeFromAllStores(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.clearAllStores()
	w.doorByBound = make(map[int]core.Entity)
}

// AddSystem registers a system for updates and event routing, ordered by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	w.router.Register(s)
}

// Systems returns a copy of all registered systems in update order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// AddListener attaches an external event observer
func (w *World) AddListener(l Listener) {
	w.listeners = append(w.listeners, l)
}

// PushEvent queues an event for the next flush
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.Time.Tick,
	})
}

// PendingEvents returns the number of queued, undelivered events
func (w *World) PendingEvents() int {
	return w.queue.Len()
}

// Tick advances the simulation by dt
//  1. Flush queued intents and events to handlers and listeners
//  2. Capture TickStart
//  3. Run systems in priority order
//  4. Flush events emitted during the tick
func (w *World) Tick(dt time.Duration) {
	w.Time.Tick++
	w.Time.Delta = dt
	w.Time.Elapsed += dt

	w.Flush()
	w.captureTickStart()

	for _, s := range w.systems {
		s.Update()
	}

	w.Flush()
}

// Flush delivers queued events to handlers then listeners
// Events pushed by handlers are delivered in follow-up passes, bounded by EventFlushPasses
func (w *World) Flush() {
	for pass := 0; pass < parameter.EventFlushPasses; pass++ {
		events := w.queue.Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			w.router.Dispatch(ev)
			for _, l := range w.listeners {
				l.OnEvent(ev)
			}
		}
	}
	if n := w.queue.Len(); n > 0 {
		w.Logger.Warn().Int("pending", n).Msg("event flush pass limit reached")
	}
}

// GapOpen reports whether the door in boundary b is open, satisfying arena.Gate
// A boundary without a door is open
func (w *World) GapOpen(boundary int) bool {
	e, ok := w.doorByBound[boundary]
	if !ok {
		return true
	}
	d, ok := w.Components.Door.GetComponent(e)
	if !ok {
		return true
	}
	return d.Passable()
}

// CheckBounds tests p against rooms and doors with the player collision buffer
func (w *World) CheckBounds(p vmath.Vec2) bool {
	return w.Layout.CheckBounds(p, parameter.PlayerCollisionRadius+parameter.WallBarrier, w)
}

// PlayerInGap reports whether the player's body is inside boundary's door gap
func (w *World) PlayerInGap(boundary int) bool {
	return w.Layout.InGap(w.Session.Position, parameter.PlayerCollisionRadius+parameter.WallBarrier, boundary)
}

// DoorAt returns the door entity in boundary b
func (w *World) DoorAt(boundary int) (core.Entity, bool) {
	e, ok := w.doorByBound[boundary]
	return e, ok
}

// SpawnHostile adds a unit of kind at pos, its home room resolved from pos
func (w *World) SpawnHostile(kind core.Kind, tag string, pos vmath.Vec2) (core.Entity, bool) {
	profile, ok := component.ProfileFor(kind)
	if !ok {
		return 0, false
	}
	e := w.CreateEntity()
	h := component.NewHostile(profile, tag, pos, w.Layout.RoomIndex(pos.Z))
	h.PatrolTimer = w.PatrolInterval()
	w.Components.Hostile.SetComponent(e, h)
	return e, true
}

// SpawnDoor places a closed door centred in boundary b's gap
func (w *World) SpawnDoor(boundary int) core.Entity {
	e := w.CreateEntity()
	pos := vmath.V2(0, w.Layout.BoundaryZ(boundary))
	w.Components.Door.SetComponent(e, component.NewDoor(arena.DoorID(boundary), boundary, pos))
	w.doorByBound[boundary] = e
	return e
}

// SpawnProjectile adds a projectile in flight
func (w *World) SpawnProjectile(p component.ProjectileComponent) core.Entity {
	e := w.CreateEntity()
	w.Components.Projectile.SetComponent(e, p)
	return e
}

// PatrolInterval draws a randomized patrol retarget delay
func (w *World) PatrolInterval() time.Duration {
	span := parameter.PatrolRetargetMax - parameter.PatrolRetargetMin
	return parameter.PatrolRetargetMin + time.Duration(w.Rand.Float64()*float64(span))
}
