package flicker

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Audio is the sound collaborator a scene mutes on Pause and unmutes on Resume.
type Audio interface {
	MuteAll()
	UnmuteAll()
}

// DefaultSampleRate is the speaker rate used by NewBeepAudio when none is given.
const DefaultSampleRate = beep.SampleRate(48000)

// BeepAudio mixes tracks through a beep.Mixer. Every track is wrapped in an
// effects.Volume so MuteAll can silence it without stopping playback.
type BeepAudio struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	tracks      []*effects.Volume
	muted       bool
	initialized bool
}

// NewBeepAudio creates an audio mixer at sampleRate. Zero selects
// DefaultSampleRate.
func NewBeepAudio(sampleRate beep.SampleRate) *BeepAudio {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}
	return &BeepAudio{sampleRate: sampleRate, mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts playing the mixer. Calling it again is a
// no-op.
func (a *BeepAudio) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	if err := speaker.Init(a.sampleRate, a.sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// Play adds s to the mix and returns its volume control.
func (a *BeepAudio) Play(s beep.Streamer) *effects.Volume {
	a.lock()
	defer a.unlock()

	v := &effects.Volume{Streamer: s, Base: 2, Silent: a.muted}
	a.tracks = append(a.tracks, v)
	a.mixer.Add(v)
	return v
}

// MuteAll silences every current and future track.
func (a *BeepAudio) MuteAll() {
	a.setMuted(true)
}

// UnmuteAll restores every track.
func (a *BeepAudio) UnmuteAll() {
	a.setMuted(false)
}

// Muted reports whether the mixer is muted.
func (a *BeepAudio) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

func (a *BeepAudio) setMuted(muted bool) {
	a.lock()
	defer a.unlock()

	a.muted = muted
	for _, v := range a.tracks {
		v.Silent = muted
	}
}

// lock guards track state, and the speaker's stream goroutine once it runs.
func (a *BeepAudio) lock() {
	a.mu.Lock()
	if a.initialized {
		speaker.Lock()
	}
}

func (a *BeepAudio) unlock() {
	if a.initialized {
		speaker.Unlock()
	}
	a.mu.Unlock()
}
