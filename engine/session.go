package engine

import (
	"time"

	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// SessionConfig holds the tunable starting values of a session
type SessionConfig struct {
	MaxHealth    int
	StartingAmmo int
	NoClip       bool
}

// DefaultSessionConfig returns the stock starting values
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MaxHealth:    parameter.PlayerMaxHealth,
		StartingAmmo: parameter.StartingAmmo,
	}
}

// Session is the player's state, owned by the world
type Session struct {
	Health    int
	MaxHealth int
	Ammo      int

	ZapCharge float64
	ZapReady  bool

	// ZapJabRemaining is the rest of the jab window, StrikePending is cleared at peak extension
	ZapJabRemaining  time.Duration
	ZapStrikePending bool

	GameOver bool
	NoClip   bool

	Position vmath.Vec2
	Yaw      float64
	Velocity vmath.Vec2
	Keys     event.MoveKeys
}

// newSession returns a session at its starting values, zapper fully charged
func newSession(cfg SessionConfig) Session {
	return Session{
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Ammo:      cfg.StartingAmmo,
		ZapCharge: 1.0,
		ZapReady:  true,
		NoClip:    cfg.NoClip,
		Position:  vmath.V2(parameter.PlayerStartX, parameter.PlayerStartZ),
		Yaw:       parameter.PlayerStartYaw,
	}
}

// Forward returns the camera forward direction
func (s *Session) Forward() vmath.Vec2 {
	return vmath.Forward(s.Yaw)
}

// DamagePlayer removes health and ends the game at zero
// Returns false once the game is over
func (w *World) DamagePlayer(n int) bool {
	s := &w.Session
	if s.GameOver {
		return false
	}

	s.Health -= n
	if s.Health < 0 {
		s.Health = 0
	}

	if s.Health == 0 {
		s.GameOver = true
		s.Velocity = vmath.Vec2{}
		s.Keys = 0
		w.Logger.Info().Uint64("tick", w.Time.Tick).Msg("game over")
		w.PushEvent(event.EventGameOver, &event.SessionPayload{Health: s.Health, Ammo: s.Ammo})
	}
	return true
}
