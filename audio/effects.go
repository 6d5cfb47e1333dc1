package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/booster-catch/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping linearly from freq to freqTo
type oscillator struct {
	freq     float64
	freqTo   float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over its duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqTo:   to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase at the current point of the sweep
		progress := float64(o.position) / float64(max(o.duration, 1))
		freq := o.freq + (o.freqTo-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// rumble is endless low-passed noise over a low tone, fading in from silence
type rumble struct {
	rate   beep.SampleRate
	pos    int
	fadeIn int
	alpha  float64
	lp     float64
	rng    *rand.Rand
}

// NewRumble creates the engine rumble generator; it never ends on its own
func NewRumble(rate beep.SampleRate) beep.Streamer {
	// One-pole low-pass coefficient for the cutoff frequency
	dt := 1 / float64(rate)
	rc := 1 / (2 * math.Pi * parameter.RumbleCutoffHz)
	return &rumble{
		rate:   rate,
		fadeIn: rate.N(parameter.RumbleFadeIn),
		alpha:  dt / (rc + dt),
		rng:    rand.New(rand.NewPCG(1, 2)),
	}
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(r.pos) / float64(r.rate)

		noise := r.rng.Float64()*2 - 1
		r.lp += r.alpha * (noise - r.lp)
		tone := 0.3 * math.Sin(2*math.Pi*parameter.RumbleToneHz*t)

		env := 1.0
		if r.pos < r.fadeIn {
			env = float64(r.pos) / float64(r.fadeIn)
		}

		val := env * (2.5*r.lp + tone)
		samples[i][0] = val
		samples[i][1] = val
		r.pos++
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateCountdownSound generates the short tick played for each countdown number
func CreateCountdownSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.CountdownToneHz, parameter.CountdownToneDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.CountdownToneDuration, parameter.CountdownToneAttack, parameter.CountdownToneRelease, rate)
	return newVolume(shaped, cfg.gain(SoundCountdown))
}

// CreateLiftoffSound generates a rising sweep for ignition
func CreateLiftoffSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(parameter.LiftoffSweepFromHz, parameter.LiftoffSweepToHz, parameter.LiftoffSweepDuration, WaveSaw, rate)
	shaped := NewEnvelope(sweep, parameter.LiftoffSweepDuration, parameter.LiftoffSweepAttack, parameter.LiftoffSweepRelease, rate)
	return newVolume(shaped, cfg.gain(SoundLiftoff))
}

// CreateRumbleSound generates the endless engine rumble
func CreateRumbleSound(cfg *AudioConfig) beep.Streamer {
	return newVolume(NewRumble(beep.SampleRate(cfg.SampleRate)), cfg.gain(SoundRumble))
}

// CreateWhooshSound generates a quick noise burst for separation
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.WhooshSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.WhooshSoundDuration, parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)
	return newVolume(shaped, cfg.gain(SoundWhoosh))
}

// CreateChimeSound generates a two-note chime for the catch
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.ChimeNote1Hz, parameter.ChimeNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate)

	n2 := NewOscillator(parameter.ChimeNote2Hz, parameter.ChimeNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.gain(SoundChime))
}

// GetSoundEffect returns the streamer for the given cue
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundCountdown:
		return CreateCountdownSound(cfg)
	case SoundLiftoff:
		return CreateLiftoffSound(cfg)
	case SoundRumble:
		return CreateRumbleSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	default:
		return nil
	}
}
