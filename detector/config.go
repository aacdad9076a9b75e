package detector

import (
	"fmt"

	"github.com/RyanBlaney/raga-sonar/algorithms/pitch"
	"github.com/RyanBlaney/raga-sonar/algorithms/tonal"
	"github.com/RyanBlaney/raga-sonar/transcode"
)

// Config holds the detector's tunable parameters.
type Config struct {
	// SampleRate of the PCM handed to Analyze, and the rate files are
	// resampled to by AnalyzeFile.
	SampleRate int `json:"sample_rate"`

	// TonicBins is the histogram resolution of the tonic estimator.
	TonicBins int `json:"tonic_bins"`

	// Pitch configures the default YIN tracker.
	Pitch pitch.Params `json:"pitch"`

	// Decode configures the ffmpeg decoder used by AnalyzeFile. Nil
	// selects transcode defaults at the configured sample rate.
	Decode *transcode.Config `json:"decode,omitempty"`
}

// DefaultConfig mirrors the defaults of the analysis pipeline: 22.05
// kHz audio and a 100-bin tonic histogram.
func DefaultConfig() *Config {
	sampleRate := 22050

	decode := transcode.DefaultConfig()
	decode.TargetSampleRate = sampleRate

	return &Config{
		SampleRate: sampleRate,
		TonicBins:  tonal.DefaultTonicBins,
		Pitch:      pitch.DefaultParams(sampleRate),
		Decode:     decode,
	}
}

// Validate reports configuration inconsistencies.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("detector: sample rate %d must be positive", c.SampleRate)
	}
	if c.TonicBins <= 0 {
		return fmt.Errorf("detector: tonic bins %d must be positive", c.TonicBins)
	}
	if c.Decode != nil && c.Decode.TargetSampleRate != c.SampleRate {
		return fmt.Errorf("detector: decode sample rate %d does not match analysis sample rate %d",
			c.Decode.TargetSampleRate, c.SampleRate)
	}
	return nil
}
