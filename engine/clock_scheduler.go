package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
)

// ClockScheduler drives World.Tick on a fixed interval
// It owns the world for the lifetime of Run; other goroutines reach it only through PushEvent
type ClockScheduler struct {
	world        *World
	tickInterval time.Duration

	intents chan event.GameEvent
	paused  atomic.Bool
	running atomic.Bool

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
	dropped   atomic.Uint64

	// afterTick runs on the scheduler goroutine with exclusive world access
	afterTick func(w *World)
}

// NewClockScheduler creates a scheduler ticking w every tickInterval
func NewClockScheduler(w *World, tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}
	return &ClockScheduler{
		world:        w,
		tickInterval: tickInterval,
		intents:      make(chan event.GameEvent, parameter.IntentBufferSize),
	}
}

// OnTick sets a hook run after every tick, must be called before Run
func (cs *ClockScheduler) OnTick(fn func(w *World)) {
	cs.afterTick = fn
}

// PushEvent submits an intent from any goroutine
// Never blocks: the intent is dropped when the buffer is full
func (cs *ClockScheduler) PushEvent(eventType event.EventType, payload any) {
	select {
	case cs.intents <- event.GameEvent{Type: eventType, Payload: payload}:
	default:
		cs.dropped.Add(1)
	}
}

// Pause stops ticking while still accepting intents
func (cs *ClockScheduler) Pause() { cs.paused.Store(true) }

// Resume continues ticking after Pause
func (cs *ClockScheduler) Resume() { cs.paused.Store(false) }

// Paused reports the pause flag
func (cs *ClockScheduler) Paused() bool { return cs.paused.Load() }

// TickCount returns the number of ticks executed by Run
func (cs *ClockScheduler) TickCount() uint64 { return cs.tickCount.Load() }

// DroppedIntents returns intents discarded because the buffer was full
func (cs *ClockScheduler) DroppedIntents() uint64 { return cs.dropped.Load() }

// Run ticks the world until ctx is cancelled
// Returns ctx.Err() on cancellation
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return errAlreadyRunning
	}
	defer cs.running.Store(false)

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-cs.intents:
			cs.world.PushEvent(ev.Type, ev.Payload)

		case <-ticker.C:
			if cs.paused.Load() {
				continue
			}
			cs.drainIntents()
			cs.world.Tick(cs.tickInterval)
			cs.tickCount.Add(1)
			if cs.afterTick != nil {
				cs.afterTick(cs.world)
			}
		}
	}
}

// drainIntents moves every buffered intent into the world queue without blocking
func (cs *ClockScheduler) drainIntents() {
	for {
		select {
		case ev := <-cs.intents:
			cs.world.PushEvent(ev.Type, ev.Payload)
		default:
			return
		}
	}
}
