package engine

//go:generate mockgen -destination=mock/mock_listener.go -package=mock github.com/lixenwraith/corridor/engine Listener

import (
	"github.com/lixenwraith/corridor/event"
)

// Listener observes every event flushed by the world
// Listeners are collaborators (audio, telemetry, logging) and never feed back into simulation
type Listener interface {
	OnEvent(ev event.GameEvent)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev event.GameEvent)

func (f ListenerFunc) OnEvent(ev event.GameEvent) { f(ev) }
