package constants

import "time"

// Audio Constants
const (
	// DefaultVolume is the initial player volume (0.0-1.0)
	DefaultVolume = 0.7

	// VolumeStep is the change applied by one volume key press
	VolumeStep = 0.1

	// SeekStep is the fraction of the track skipped by one seek key press
	SeekStep = 0.05

	// SampleRate is the speaker output rate
	SampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// ResampleQuality is passed to beep.Resample when a track rate differs from the speaker
	ResampleQuality = 4
)
