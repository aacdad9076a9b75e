// Package pitch tracks the fundamental frequency of a monophonic
// recording using the YIN algorithm.
//
// Reference: de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental
// frequency estimator for speech and music"
package pitch

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/raga-sonar/logging"
)

// Errors reported by the tracker.
var (
	ErrEmptySignal   = errors.New("empty signal")
	ErrInvalidParams = errors.New("invalid tracker parameters")
)

// Params configures the YIN tracker.
type Params struct {
	SampleRate int `json:"sample_rate"`
	FrameSize  int `json:"frame_size"` // samples per analysis frame
	HopSize    int `json:"hop_size"`   // samples between frame starts

	// Frequency range constraints
	MinFreq float64 `json:"min_freq"` // Minimum frequency (Hz)
	MaxFreq float64 `json:"max_freq"` // Maximum frequency (Hz)

	// YinThreshold is the absolute threshold on the cumulative mean
	// normalized difference; frames whose minimum never dips below it
	// are reported unvoiced.
	YinThreshold float64 `json:"yin_threshold"`

	// FFTThreshold selects the FFT-based difference function for frames
	// at or above this size; smaller frames use the direct calculation.
	FFTThreshold int `json:"fft_threshold"`
}

// DefaultParams returns tracker parameters tuned for vocal and
// instrumental Carnatic recordings: the C2-C7 range used by the
// analysis pipeline's pitch extraction.
func DefaultParams(sampleRate int) Params {
	return Params{
		SampleRate:   sampleRate,
		FrameSize:    2048,
		HopSize:      256,
		MinFreq:      65.4,   // C2
		MaxFreq:      2093.0, // C7
		YinThreshold: 0.15,
		FFTThreshold: 1024,
	}
}

// Frame is the tracker output for one analysis frame.
type Frame struct {
	Time       float64 `json:"time"`       // frame start in seconds
	Frequency  float64 `json:"frequency"`  // estimated f0 in Hz, 0 when unvoiced
	Confidence float64 `json:"confidence"` // 1 - CMNDF minimum
	Voiced     bool    `json:"voiced"`
}

// Tracker estimates per-frame fundamental frequency and voicing.
type Tracker struct {
	params Params
	logger logging.Logger
}

// NewTracker creates a tracker with default parameters for the sample rate.
func NewTracker(sampleRate int) *Tracker {
	t, err := NewTrackerWithParams(DefaultParams(sampleRate))
	if err != nil {
		// Defaults are always valid for a positive sample rate
		panic(err)
	}
	return t
}

// NewTrackerWithParams creates a tracker with custom parameters.
func NewTrackerWithParams(params Params) (*Tracker, error) {
	switch {
	case params.SampleRate <= 0:
		return nil, fmt.Errorf("pitch: sample rate %d: %w", params.SampleRate, ErrInvalidParams)
	case params.FrameSize < 4:
		return nil, fmt.Errorf("pitch: frame size %d: %w", params.FrameSize, ErrInvalidParams)
	case params.HopSize <= 0:
		return nil, fmt.Errorf("pitch: hop size %d: %w", params.HopSize, ErrInvalidParams)
	case params.YinThreshold <= 0 || params.YinThreshold >= 1:
		return nil, fmt.Errorf("pitch: yin threshold %v: %w", params.YinThreshold, ErrInvalidParams)
	case params.MinFreq <= 0 || params.MaxFreq <= params.MinFreq:
		return nil, fmt.Errorf("pitch: frequency range [%v, %v]: %w", params.MinFreq, params.MaxFreq, ErrInvalidParams)
	}

	return &Tracker{
		params: params,
		logger: logging.WithFields(logging.Fields{
			"component": "pitch_tracker",
		}),
	}, nil
}

// Params returns the tracker configuration.
func (t *Tracker) Params() Params {
	return t.params
}

// Track slices the signal into frames and runs YIN on each. The sample
// rate is taken from the params; the signal must hold at least one full
// frame.
func (t *Tracker) Track(samples []float64) ([]Frame, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("pitch: track: %w", ErrEmptySignal)
	}
	if len(samples) < t.params.FrameSize {
		return nil, fmt.Errorf("pitch: track: signal shorter than one frame (%d < %d): %w",
			len(samples), t.params.FrameSize, ErrEmptySignal)
	}

	frameCount := (len(samples)-t.params.FrameSize)/t.params.HopSize + 1
	frames := make([]Frame, 0, frameCount)

	voiced := 0
	for i := 0; i < frameCount; i++ {
		start := i * t.params.HopSize
		frame := t.analyzeFrame(samples[start : start+t.params.FrameSize])
		frame.Time = float64(start) / float64(t.params.SampleRate)
		if frame.Voiced {
			voiced++
		}
		frames = append(frames, frame)
	}

	t.logger.Debug("pitch tracking complete", logging.Fields{
		"frames":        len(frames),
		"voiced_frames": voiced,
	})

	return frames, nil
}

// VoicedFrequencies tracks the signal and returns only the voiced
// frequency estimates, the form the raga analysis pipeline consumes.
func (t *Tracker) VoicedFrequencies(samples []float64) ([]float64, error) {
	frames, err := t.Track(samples)
	if err != nil {
		return nil, err
	}

	freqs := make([]float64, 0, len(frames))
	for _, f := range frames {
		if f.Voiced {
			freqs = append(freqs, f.Frequency)
		}
	}
	return freqs, nil
}

// analyzeFrame runs YIN on one frame.
func (t *Tracker) analyzeFrame(frame []float64) Frame {
	// Remove DC offset so the difference function reflects periodicity,
	// not bias.
	centered := make([]float64, len(frame))
	mean := stat.Mean(frame, nil)
	for i, v := range frame {
		centered[i] = v - mean
	}

	diff := t.differenceFunction(centered)
	cmndf := cumulativeMeanNormalize(diff)

	tauMin := int(float64(t.params.SampleRate) / t.params.MaxFreq)
	if tauMin < 1 {
		tauMin = 1
	}
	tauMax := int(float64(t.params.SampleRate)/t.params.MinFreq) + 1
	if tauMax > len(cmndf) {
		tauMax = len(cmndf)
	}
	if tauMin >= tauMax {
		return Frame{}
	}

	// First local minimum below the absolute threshold
	minTau := -1
	for tau := tauMin; tau < tauMax; tau++ {
		if cmndf[tau] < t.params.YinThreshold {
			for tau+1 < tauMax && cmndf[tau+1] < cmndf[tau] {
				tau++
			}
			minTau = tau
			break
		}
	}

	// No dip below threshold: keep the best candidate but report the
	// frame unvoiced.
	belowThreshold := minTau > 0
	if !belowThreshold {
		minTau = tauMin
		for tau := tauMin; tau < tauMax; tau++ {
			if cmndf[tau] < cmndf[minTau] {
				minTau = tau
			}
		}
	}

	period := parabolicInterpolation(cmndf, minTau)
	if period <= 0 {
		return Frame{}
	}

	frequency := float64(t.params.SampleRate) / period
	confidence := 1.0 - cmndf[minTau]
	inRange := frequency >= t.params.MinFreq && frequency <= t.params.MaxFreq

	result := Frame{
		Confidence: confidence,
		Voiced:     belowThreshold && inRange,
	}
	if inRange {
		result.Frequency = frequency
	}
	return result
}
