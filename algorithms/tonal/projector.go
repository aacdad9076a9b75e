package tonal

import (
	"fmt"
	"math"
)

// PitchClassDistribution is a normalized histogram over the twelve
// semitone classes relative to the tonic. Bins always has length 12 and
// sums to 1 for any non-empty input.
type PitchClassDistribution struct {
	Bins        []float64 `json:"bins"`
	SampleCount int       `json:"sample_count"`
}

// Entropy returns the Shannon entropy of the distribution in bits. A
// performance that dwells on few swaras scores low, chromatic noise
// scores near log2(12).
func (d PitchClassDistribution) Entropy() float64 {
	entropy := 0.0
	for _, p := range d.Bins {
		if p > 1e-10 {
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// PitchClassProjector folds voiced frequency samples onto a single
// octave relative to a tonic. Each sample is converted to cents above
// the tonic, wrapped into [0, 1200) and quantized to the nearest
// semitone class, so the projection is invariant under octave shifts of
// the input.
type PitchClassProjector struct{}

// NewPitchClassProjector creates a pitch class projector.
func NewPitchClassProjector() *PitchClassProjector {
	return &PitchClassProjector{}
}

// Project returns the pitch-class distribution of the samples relative
// to tonicHz. An empty input yields ErrEmptyInput; the caller must not
// attempt matching without a valid distribution.
func (p *PitchClassProjector) Project(samples []float64, tonicHz float64) (PitchClassDistribution, error) {
	if len(samples) == 0 {
		return PitchClassDistribution{}, fmt.Errorf("tonal: project pitch classes: %w", ErrEmptyInput)
	}
	if tonicHz <= 0 || math.IsNaN(tonicHz) || math.IsInf(tonicHz, 0) {
		return PitchClassDistribution{}, fmt.Errorf("tonal: project pitch classes: tonic %v: %w", tonicHz, ErrInvalidTonic)
	}

	bins := make([]float64, PitchClassCount)
	for i, f := range samples {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return PitchClassDistribution{}, fmt.Errorf("tonal: project pitch classes: sample %d (%v): %w", i, f, ErrInvalidFrequency)
		}

		cents := 1200.0 * math.Log2(f/tonicHz)
		wrapped := math.Mod(cents, 1200.0)
		if wrapped < 0 {
			wrapped += 1200.0
		}

		class := int(math.Round(wrapped/100.0)) % PitchClassCount
		bins[class]++
	}

	total := float64(len(samples))
	for i := range bins {
		bins[i] /= total
	}

	return PitchClassDistribution{
		Bins:        bins,
		SampleCount: len(samples),
	}, nil
}
