package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/booster-catch/parameter"
)

// SoundManager plays the flight sound cues through the speaker
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu            sync.Mutex
	cfg           *AudioConfig
	rumbleControl *beep.Ctrl
	mixer         *beep.Mixer
	initialized   bool
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sounds will be heard
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.rumbleControl != nil {
		sm.rumbleControl.Paused = true
		sm.rumbleControl = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// play adds a one-shot streamer to the mixer
func (sm *SoundManager) play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(s, sm.cfg)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayCountdown plays the countdown tick
func (sm *SoundManager) PlayCountdown() { sm.play(SoundCountdown) }

// PlayLiftoff plays the ignition sweep
func (sm *SoundManager) PlayLiftoff() { sm.play(SoundLiftoff) }

// PlayWhoosh plays the separation burst
func (sm *SoundManager) PlayWhoosh() { sm.play(SoundWhoosh) }

// PlayChime plays the catch chime
func (sm *SoundManager) PlayChime() { sm.play(SoundChime) }

// StartRumble begins the engine rumble; already running is a no-op
func (sm *SoundManager) StartRumble() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// If already playing, don't restart
	if sm.rumbleControl != nil && !sm.rumbleControl.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: CreateRumbleSound(sm.cfg), Paused: false}
	speaker.Lock()
	sm.rumbleControl = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopRumble silences the engine rumble
func (sm *SoundManager) StopRumble() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.rumbleControl == nil {
		return
	}

	speaker.Lock()
	sm.rumbleControl.Paused = true
	speaker.Unlock()
}

// Rumbling reports whether the engine rumble is playing
func (sm *SoundManager) Rumbling() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.rumbleControl != nil && !sm.rumbleControl.Paused
}
