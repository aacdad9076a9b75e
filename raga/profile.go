// Package raga holds the reference profiles of known ragas and ranks
// them against an observed pitch-class distribution.
package raga

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/raga-sonar/algorithms/melakarta"
	"github.com/RyanBlaney/raga-sonar/algorithms/tonal"
)

// Validation errors reported at store construction time.
var (
	ErrEmptyName        = errors.New("profile name is empty")
	ErrEmptyIntervals   = errors.New("profile has no intervals")
	ErrIntervalRange    = errors.New("profile interval outside [0, 11]")
	ErrIntervalOrder    = errors.New("profile intervals not strictly increasing")
	ErrLabelMismatch    = errors.New("swara labels and intervals differ in length")
	ErrDuplicateProfile = errors.New("duplicate profile name")
)

// Profile describes one raga: its swara labels, the semitone intervals
// of those swaras from Sa, and a short description. Melakarta profiles
// always carry seven intervals; janya profiles may carry fewer.
type Profile struct {
	Name        string            `json:"name"`
	Swaras      []melakarta.Swara `json:"swaras"`
	Intervals   []int             `json:"intervals"`
	Description string            `json:"description"`
	Melakarta   int               `json:"melakarta,omitempty"` // parent index, 0 for janya entries
}

// Validate reports whether the profile is well formed. Malformed
// profiles must never reach the matcher.
func (p Profile) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if len(p.Intervals) == 0 {
		return fmt.Errorf("raga %q: %w", p.Name, ErrEmptyIntervals)
	}
	if len(p.Swaras) != len(p.Intervals) {
		return fmt.Errorf("raga %q: %w", p.Name, ErrLabelMismatch)
	}
	for i, interval := range p.Intervals {
		if interval < 0 || interval > 11 {
			return fmt.Errorf("raga %q: interval %d: %w", p.Name, interval, ErrIntervalRange)
		}
		if i > 0 && interval <= p.Intervals[i-1] {
			return fmt.Errorf("raga %q: %w", p.Name, ErrIntervalOrder)
		}
	}
	return nil
}

// ReferenceDistribution builds the ideal pitch-class distribution of
// the profile: equal weight on every listed interval, normalized to
// sum 1.
func (p Profile) ReferenceDistribution() tonal.PitchClassDistribution {
	bins := make([]float64, tonal.PitchClassCount)
	weight := 1.0 / float64(len(p.Intervals))
	for _, interval := range p.Intervals {
		bins[interval] = weight
	}
	return tonal.PitchClassDistribution{
		Bins:        bins,
		SampleCount: len(p.Intervals),
	}
}
