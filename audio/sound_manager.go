package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snake/constants"
)

// SoundManager plays game effects through a single speaker mixer
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device; disabled config skips it without error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	sampleRate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the audio device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayEat plays the fruit consumption chirp
func (sm *SoundManager) PlayEat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(CreateEatSound(sm.cfg))
	speaker.Unlock()
}
