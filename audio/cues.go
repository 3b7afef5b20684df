package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
)

// Cue is a synthesized sound description
type Cue struct {
	Freq     float64
	EndFreq  float64 // Zero holds Freq
	Wave     WaveType
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Gain     float64
}

// tone builds a default-length cue
func tone(freq, endFreq float64, wave WaveType, gain float64) Cue {
	return Cue{
		Freq:     freq,
		EndFreq:  endFreq,
		Wave:     wave,
		Duration: parameter.AudioCueDuration,
		Attack:   5 * time.Millisecond,
		Release:  60 * time.Millisecond,
		Gain:     gain,
	}
}

// defaultCues maps event keys to cues, per-kind keys take precedence over the bare type name
func defaultCues() map[string]Cue {
	cues := map[string]Cue{
		event.EventZapFired.String():        tone(300, 900, WaveSaw, 0.5),
		event.EventZapStrike.String():       tone(1200, 200, WaveSquare, 0.4),
		event.EventZapReady.String():        tone(660, 990, WaveSine, 0.3),
		event.EventPamphletFired.String():   tone(0, 0, WaveNoise, 0.25),
		event.EventBoltFired.String():       tone(1600, 400, WaveSquare, 0.35),
		event.EventPlayerHit.String():       tone(110, 60, WaveSaw, 0.7),
		event.EventPlayerMissed.String():    tone(900, 1400, WaveSine, 0.15),
		event.EventEntityHurt.String():      tone(220, 160, WaveSquare, 0.4),
		event.EventEntityConverted.String(): tone(523.25, 1046.5, WaveSine, 0.45),
		event.EventEntityDied.String():      tone(180, 40, WaveSaw, 0.5),
		event.EventDoorOpening.String():     tone(90, 140, WaveSaw, 0.3),
		event.EventDoorClosing.String():     tone(140, 90, WaveSaw, 0.3),
		event.EventGameOver.String():        tone(220, 55, WaveSquare, 0.6),
		event.EventSessionStarted.String():  tone(440, 880, WaveSine, 0.3),
		event.EventNoClipChanged.String():   tone(1000, 0, WaveSine, 0.2),
	}

	cues[event.EventDoorOpening.String()] = withDuration(cues[event.EventDoorOpening.String()], 330*time.Millisecond)
	cues[event.EventDoorClosing.String()] = withDuration(cues[event.EventDoorClosing.String()], 270*time.Millisecond)
	cues[event.EventGameOver.String()] = withDuration(cues[event.EventGameOver.String()], 800*time.Millisecond)

	// Death cries pitched per kind
	pitch := map[core.Kind]float64{
		core.KindSmallDroid: 400,
		core.KindMidDroid:   300,
		core.KindHeavyDroid: 120,
		core.KindTrooper:    250,
		core.KindCreature:   180,
	}
	for kind, freq := range pitch {
		died := tone(freq, freq/4, WaveSaw, 0.5)
		died.Duration = 400 * time.Millisecond
		cues[event.EventEntityDied.String()+"/"+kind.String()] = died
	}
	return cues
}

func withDuration(c Cue, d time.Duration) Cue {
	c.Duration = d
	return c
}

// Streamer renders the cue at master gain vol
func (c Cue) Streamer(rate beep.SampleRate, vol float64) beep.Streamer {
	end := c.EndFreq
	if end == 0 {
		end = c.Freq
	}
	osc := NewSweep(c.Freq, end, c.Duration, c.Wave, rate)
	shaped := NewEnvelope(osc, c.Duration, c.Attack, c.Release, rate)
	return newVolume(shaped, c.Gain*vol)
}
