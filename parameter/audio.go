package parameter

import "time"

// Audio cue synthesis
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master gain in [0, 1]
	AudioDefaultVolume = 0.6

	// AudioCueDuration is the default cue length
	AudioCueDuration = 150 * time.Millisecond

	// AudioMaxVoices caps concurrently mixed cues
	AudioMaxVoices = 16
)
