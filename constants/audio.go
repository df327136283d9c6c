package constants

import "time"

// Eat Sound Timing
const (
	EatSoundNote1Duration = 40 * time.Millisecond
	EatSoundNote2Duration = 90 * time.Millisecond
	EatSoundAttack        = 3 * time.Millisecond
	EatSoundNote1Release  = 15 * time.Millisecond
	EatSoundNote2Release  = 60 * time.Millisecond
)

// Audio Defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// SpeakerBufferDuration is the playback buffer handed to the speaker
	SpeakerBufferDuration = 100 * time.Millisecond
)
