// Package telemetry counts world events and ticks as OpenTelemetry metrics
package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/corridor/event"
)

const instrumentationName = "github.com/lixenwraith/corridor/telemetry"

// Recorder is an engine.Listener feeding per-event counters
// Without an SDK provider installed the instruments are the otel no-op
type Recorder struct {
	events metric.Int64Counter
	ticks  metric.Int64Counter

	mu     sync.Mutex
	counts map[event.EventType]uint64
	total  uint64
}

// NewRecorder creates the instruments on mp, nil selects the global provider
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m := mp.Meter(instrumentationName)

	r := &Recorder{
		counts: make(map[event.EventType]uint64),
	}

	var err error
	r.events, err = m.Int64Counter(
		"corridor.events.emitted",
		metric.WithDescription("World events delivered to listeners"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	r.ticks, err = m.Int64Counter(
		"corridor.ticks",
		metric.WithDescription("Simulation ticks executed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	return r, nil
}

// OnEvent counts ev under its key
func (r *Recorder) OnEvent(ev event.GameEvent) {
	r.events.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("event", ev.Type.String()),
		attribute.String("key", ev.Key()),
	))

	r.mu.Lock()
	r.counts[ev.Type]++
	r.total++
	r.mu.Unlock()
}

// RecordTick counts one simulation tick
func (r *Recorder) RecordTick() {
	r.ticks.Add(context.Background(), 1)
}

// Count returns how many events of type t were seen
func (r *Recorder) Count(t event.EventType) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[t]
}

// Summary returns per-type counts keyed by event name
func (r *Recorder) Summary() map[string]uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]uint64, len(r.counts))
	for t, n := range r.counts {
		out[t.String()] = n
	}
	return out
}

// Total returns the number of events seen
func (r *Recorder) Total() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}
