package audio

import "github.com/lixenwraith/snake/constants"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
	}
}
