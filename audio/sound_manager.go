package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	speakerBuffer = 100 * time.Millisecond
)

// SoundManager plays short feedback cues through a shared mixer
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager, volume is clamped to [0,1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds, safe to call more than once
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Speaker keeps running, an empty mixer streams silence
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// IsInitialized reports whether cues are audible
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayCommit plays the rising chime for a created set
func (sm *SoundManager) PlayCommit() {
	sm.play(CreateCommitSound)
}

// PlayDiscard plays the low tone for an abandoned set name
func (sm *SoundManager) PlayDiscard() {
	sm.play(CreateDiscardSound)
}

func (sm *SoundManager) play(create func(beep.SampleRate, float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume == 0 {
		return
	}

	s := create(sampleRate, sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
