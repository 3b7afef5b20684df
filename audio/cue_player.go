package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
)

// Config controls the cue player
type Config struct {
	Enabled    bool
	Volume     float64 // Master gain in [0, 1]
	SampleRate int
}

// DefaultConfig returns enabled audio at the default volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioDefaultVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// CuePlayer plays a synthesized cue for each world event, satisfying engine.Listener
// Failures to open the device leave it silent, the simulation never sees audio errors
type CuePlayer struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cues        map[string]Cue
	initialized bool
	logger      zerolog.Logger

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewCuePlayer creates a cue player, call Initialize to open the speaker
func NewCuePlayer(cfg Config, logger zerolog.Logger) *CuePlayer {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &CuePlayer{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		cues:   defaultCues(),
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker
// On error the player stays silent and the error is returned for the caller to log
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Info().Int("sample_rate", int(p.rate)).Msg("speaker initialized")
	return nil
}

// Close stops all cues
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// CueFor resolves the cue for an event, per-kind key first
func (p *CuePlayer) CueFor(ev event.GameEvent) (Cue, bool) {
	if cue, ok := p.cues[ev.Key()]; ok {
		return cue, true
	}
	cue, ok := p.cues[ev.Type.String()]
	return cue, ok
}

// OnEvent plays the event's cue scaled by its volume hint
func (p *CuePlayer) OnEvent(ev event.GameEvent) {
	cue, ok := p.CueFor(ev)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	streamer := cue.Streamer(p.rate, p.cfg.Volume*ev.Volume())

	speaker.Lock()
	full := p.mixer.Len() >= parameter.AudioMaxVoices
	if !full {
		p.mixer.Add(streamer)
	}
	speaker.Unlock()

	if full {
		p.dropped.Add(1)
		return
	}
	p.played.Add(1)
	p.logger.Trace().Str("cue", ev.Key()).Msg("cue played")
}

// Played returns the number of cues handed to the mixer
func (p *CuePlayer) Played() uint64 { return p.played.Load() }

// Dropped returns the number of cues skipped because every voice was busy
func (p *CuePlayer) Dropped() uint64 { return p.dropped.Load() }
