package logging

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/corridor/event"
)

// EventLogger traces every world event at debug level, satisfying engine.Listener
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger wraps logger
func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger.With().Str("component", "events").Logger()}
}

// OnEvent logs the event key, tick and payload
func (l *EventLogger) OnEvent(ev event.GameEvent) {
	e := l.logger.Debug()
	if !e.Enabled() {
		return
	}
	e = e.Str("event", ev.Key()).Uint64("tick", ev.Tick)
	if ev.Payload != nil {
		e = e.Interface("payload", ev.Payload)
	}
	if v := ev.Volume(); v != 1 {
		e = e.Float64("volume", v)
	}
	e.Msg("event")
}
