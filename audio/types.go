package audio

// SoundType represents the flight sound cues
type SoundType int

const (
	SoundCountdown SoundType = iota // Countdown tick
	SoundLiftoff                    // Rising tone at ignition
	SoundRumble                     // Engine noise while thrusting
	SoundWhoosh                     // Stage separation
	SoundChime                      // Booster caught
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundCountdown: "countdown",
	SoundLiftoff:   "liftoff",
	SoundRumble:    "rumble",
	SoundWhoosh:    "whoosh",
	SoundChime:     "chime",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
