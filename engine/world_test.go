package engine

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine/mock"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

const testTick = 10 * time.Millisecond

// eventOfType matches a GameEvent by type
type eventOfType event.EventType

func (m eventOfType) Matches(x any) bool {
	ev, ok := x.(event.GameEvent)
	return ok && ev.Type == event.EventType(m)
}

func (m eventOfType) String() string {
	return fmt.Sprintf("is %s event", event.EventType(m))
}

// stubSystem records updates and optionally reacts to events
type stubSystem struct {
	name     string
	priority int
	types    []event.EventType
	onEvent  func(ev event.GameEvent)
	onUpdate func()
	log      *[]string
}

func (s *stubSystem) Init()                         {}
func (s *stubSystem) Name() string                  { return s.name }
func (s *stubSystem) Priority() int                 { return s.priority }
func (s *stubSystem) EventTypes() []event.EventType { return s.types }

func (s *stubSystem) HandleEvent(ev event.GameEvent) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

func (s *stubSystem) Update() {
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

func TestWorldEntityIDs(t *testing.T) {
	w := NewWorld(WithSeed(1))
	a := w.CreateEntity()
	b := w.CreateEntity()
	assert.Equal(t, core.Entity(1), a)
	assert.Equal(t, core.Entity(2), b)
}

func TestWorldSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld(WithSeed(1))
	var order []string
	w.AddSystem(&stubSystem{name: "late", priority: 50, log: &order})
	w.AddSystem(&stubSystem{name: "early", priority: 10, log: &order})
	w.AddSystem(&stubSystem{name: "mid", priority: 30, log: &order})
	w.AddSystem(&stubSystem{name: "mid2", priority: 30, log: &order})

	w.Tick(testTick)
	assert.Equal(t, []string{"early", "mid", "mid2", "late"}, order)
	assert.Equal(t, uint64(1), w.Time.Tick)
	assert.Equal(t, testTick, w.Time.Delta)

	w.Tick(testTick)
	assert.Equal(t, 2*testTick, w.Time.Elapsed)
}

func TestWorldFlushRoutesHandlersThenListeners(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockListener(ctrl)
	w := NewWorld(WithSeed(1))

	handled := 0
	w.AddSystem(&stubSystem{
		name:  "reactor",
		types: []event.EventType{event.EventZapRequest},
		onEvent: func(ev event.GameEvent) {
			handled++
			w.PushEvent(event.EventZapFired, nil)
		},
	})
	w.AddListener(listener)

	gomock.InOrder(
		listener.EXPECT().OnEvent(eventOfType(event.EventZapRequest)).Do(func(event.GameEvent) {
			assert.Equal(t, 1, handled, "handler runs before listeners")
		}),
		listener.EXPECT().OnEvent(eventOfType(event.EventZapFired)),
	)

	w.PushEvent(event.EventZapRequest, nil)
	assert.Equal(t, 1, w.PendingEvents())
	w.Flush()
	assert.Zero(t, w.PendingEvents())
}

func TestWorldFlushPassLimit(t *testing.T) {
	w := NewWorld(WithSeed(1))
	calls := 0
	w.AddSystem(&stubSystem{
		name:  "echo",
		types: []event.EventType{event.EventTurnRequest},
		onEvent: func(ev event.GameEvent) {
			calls++
			w.PushEvent(event.EventTurnRequest, nil)
		},
	})

	w.PushEvent(event.EventTurnRequest, nil)
	w.Flush()
	assert.Equal(t, parameter.EventFlushPasses, calls)
	assert.Equal(t, 1, w.PendingEvents(), "leftover delivered on the next flush")
}

func TestWorldTickStartCapturedAfterIntents(t *testing.T) {
	w := NewWorld(WithSeed(1))
	e, ok := w.SpawnHostile(core.KindTrooper, "t", vmath.V2(0, 25))
	require.True(t, ok)

	var seen TickStart
	w.AddSystem(&stubSystem{
		name:  "mover",
		types: []event.EventType{event.EventTurnRequest},
		onEvent: func(ev event.GameEvent) {
			w.Session.Position = vmath.V2(1, 12)
		},
		onUpdate: func() {
			seen.Player = w.TickStart.Player
			seen.Hostiles = map[core.Entity]vmath.Vec2{}
			for k, v := range w.TickStart.Hostiles {
				seen.Hostiles[k] = v
			}
			h, _ := w.Components.Hostile.GetComponent(e)
			h.Position = vmath.V2(3, 25)
			w.Components.Hostile.SetComponent(e, h)
		},
	})

	w.PushEvent(event.EventTurnRequest, nil)
	w.Tick(testTick)
	assert.Equal(t, vmath.V2(1, 12), seen.Player)
	assert.Equal(t, vmath.V2(0, 25), seen.Hostiles[e], "mutation during the tick is not visible in TickStart")
}

func TestWorldTickStartSkipsDying(t *testing.T) {
	w := NewWorld(WithSeed(1))
	alive, _ := w.SpawnHostile(core.KindSmallDroid, "a", vmath.V2(0, 5))
	dying, _ := w.SpawnHostile(core.KindSmallDroid, "d", vmath.V2(1, 5))
	h, _ := w.Components.Hostile.GetComponent(dying)
	h.TakeDamage(10)
	w.Components.Hostile.SetComponent(dying, h)

	w.Tick(testTick)
	assert.Contains(t, w.TickStart.Hostiles, alive)
	assert.NotContains(t, w.TickStart.Hostiles, dying)
}

func TestWorldDamagePlayerGameOverOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockListener(ctrl)
	w := NewWorld(WithSeed(1))
	w.AddListener(listener)

	listener.EXPECT().OnEvent(eventOfType(event.EventGameOver)).Times(1)

	assert.True(t, w.DamagePlayer(2))
	assert.Equal(t, 1, w.Session.Health)
	assert.False(t, w.Session.GameOver)

	w.Session.Velocity = vmath.V2(0.1, 0)
	w.Session.Keys = event.MoveKeys(0).With(event.MoveForward)
	assert.True(t, w.DamagePlayer(5))
	assert.Equal(t, 0, w.Session.Health, "health clamps at zero")
	assert.True(t, w.Session.GameOver)
	assert.Equal(t, vmath.Vec2{}, w.Session.Velocity)
	assert.Equal(t, event.MoveKeys(0), w.Session.Keys)

	assert.False(t, w.DamagePlayer(1))
	w.Flush()
}

func TestWorldSpawnHostile(t *testing.T) {
	w := NewWorld(WithSeed(1))
	e, ok := w.SpawnHostile(core.KindCreature, "c", vmath.V2(-2, 43))
	require.True(t, ok)

	h, ok := w.Components.Hostile.GetComponent(e)
	require.True(t, ok)
	assert.Equal(t, 4, h.HomeRoom)
	assert.Equal(t, parameter.CreatureHealth, h.Health)
	assert.GreaterOrEqual(t, h.PatrolTimer, parameter.PatrolRetargetMin)
	assert.LessOrEqual(t, h.PatrolTimer, parameter.PatrolRetargetMax)

	_, ok = w.SpawnHostile(core.Kind(200), "bad", vmath.V2(0, 5))
	assert.False(t, ok)
}

func TestWorldDoorsAndGaps(t *testing.T) {
	w := NewWorld(WithSeed(1))
	assert.True(t, w.GapOpen(1), "no door means open")

	e := w.SpawnDoor(1)
	assert.False(t, w.GapOpen(1))
	got, ok := w.DoorAt(1)
	require.True(t, ok)
	assert.Equal(t, e, got)

	d, _ := w.Components.Door.GetComponent(e)
	assert.Equal(t, "door_0_1", d.ID)
	assert.Equal(t, vmath.V2(0, 10), d.Position)
	assert.False(t, w.CheckBounds(vmath.V2(0, 10)))

	w.DestroyEntity(e)
	_, ok = w.DoorAt(1)
	assert.False(t, ok)
	assert.True(t, w.CheckBounds(vmath.V2(0, 10)))
	assert.False(t, w.CheckBounds(vmath.V2(3, 10)), "wall beside the gap")
}

func TestWorldSnapshot(t *testing.T) {
	w := NewWorld(WithSeed(1))
	w.InitSession()
	w.Session.Ammo = 7
	w.Session.ZapJabRemaining = time.Millisecond
	w.Tick(testTick)

	snap := w.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, 1, snap.Room)
	assert.Len(t, snap.Actors, len(DefaultPlacements))
	assert.Len(t, snap.Doors, w.Layout.Boundaries())
	assert.Empty(t, snap.Projectiles)
	assert.Equal(t, 7, snap.HUD.Ammo)
	assert.Equal(t, parameter.PlayerMaxHealth, snap.HUD.Health)
	assert.True(t, snap.HUD.Ready)
	assert.True(t, snap.HUD.Jabbing)

	first := snap.Actors[0]
	assert.Equal(t, "small-droid_0_0", first.Tag)
	assert.Equal(t, "small-droid/patrol/0", first.VisualKey)
	assert.Equal(t, 1.0, first.Opacity)

	assert.Equal(t, "door/closed/0", snap.Doors[0].VisualKey)

	snap.Actors[0].Tag = "mutated"
	h, _ := w.Components.Hostile.GetComponent(first.Entity)
	assert.Equal(t, "small-droid_0_0", h.Tag)
}

func TestWorldSnapshotProjectileView(t *testing.T) {
	w := NewWorld(WithSeed(1))
	w.SpawnProjectile(component.ProjectileComponent{
		Kind:        core.ProjectilePamphlet,
		Position:    vmath.V2(0, 16),
		Direction:   vmath.V2(0, 1),
		Speed:       parameter.PamphletStartSpeed,
		TargetSpeed: parameter.PamphletTargetSpeed,
	})
	w.SpawnProjectile(component.ProjectileComponent{
		Kind:      core.ProjectileBolt,
		Position:  vmath.V2(1, 25),
		Direction: vmath.V2(-1, 0),
	})

	snap := w.Snapshot()
	require.Len(t, snap.Projectiles, 2)

	pamphlet, bolt := snap.Projectiles[0], snap.Projectiles[1]
	assert.Equal(t, "pamphlet/ramping", pamphlet.VisualKey)
	assert.InDelta(t, 0, pamphlet.Facing, 1e-9)
	assert.Equal(t, "bolt/flying", bolt.VisualKey)
	assert.InDelta(t, -math.Pi/2, bolt.Facing, 1e-9)
}
