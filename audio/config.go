package audio

import "github.com/lixenwraith/booster-catch/parameter"

// AudioConfig holds gain and format settings for the sound cues
type AudioConfig struct {
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: [soundTypeCount]float64{
			SoundCountdown: 0.5,
			SoundLiftoff:   0.6,
			SoundRumble:    0.35,
			SoundWhoosh:    0.5,
			SoundChime:     0.6,
		},
	}
}

// WithMasterVolume returns a copy with the master gain clamped to [0,1]
func (c AudioConfig) WithMasterVolume(v float64) *AudioConfig {
	c.MasterVolume = min(max(v, 0), 1)
	return &c
}

func (c *AudioConfig) gain(s SoundType) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}
