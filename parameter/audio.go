package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default overall gain in [0,1]
	AudioMasterVolume = 0.6
)

// Countdown tick
const (
	CountdownToneHz       = 880.0
	CountdownToneDuration = 120 * time.Millisecond
	CountdownToneAttack   = 5 * time.Millisecond
	CountdownToneRelease  = 60 * time.Millisecond
)

// Liftoff sweep
const (
	LiftoffSweepFromHz   = 220.0
	LiftoffSweepToHz     = 880.0
	LiftoffSweepDuration = 900 * time.Millisecond
	LiftoffSweepAttack   = 20 * time.Millisecond
	LiftoffSweepRelease  = 300 * time.Millisecond
)

// Engine rumble
const (
	// RumbleCutoffHz is the corner frequency of the one-pole low-pass over white noise
	RumbleCutoffHz = 120.0
	RumbleToneHz   = 55.0
	RumbleFadeIn   = 400 * time.Millisecond
)

// Separation whoosh
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Catch chime, two notes
const (
	ChimeNote1Hz       = 987.77
	ChimeNote2Hz       = 1318.51
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 280 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
)
