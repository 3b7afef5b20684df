package system

import (
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
)

// SessionSystem handles session-wide intents: restart and no-clip
type SessionSystem struct {
	world *engine.World
}

func NewSessionSystem(world *engine.World) *SessionSystem {
	s := &SessionSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *SessionSystem) Init() {}

func (s *SessionSystem) Name() string {
	return "session"
}

func (s *SessionSystem) Priority() int {
	return parameter.PrioritySession
}

func (s *SessionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventNoClipToggle,
	}
}

func (s *SessionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.world.ResetSession()

	case event.EventNoClipToggle:
		session := &s.world.Session
		session.NoClip = !session.NoClip
		s.world.Logger.Info().Bool("noclip", session.NoClip).Msg("no-clip toggled")
		s.world.PushEvent(event.EventNoClipChanged, &event.NoClipPayload{Enabled: session.NoClip})
	}
}

func (s *SessionSystem) Update() {}
