// Package tonal estimates the tonal reference (Sa) of a performance and
// projects voiced pitch observations into a pitch-class distribution
// relative to it.
package tonal

import "errors"

// Errors shared by the tonal estimators.
var (
	// ErrEmptyInput is returned when no voiced frequency samples are supplied.
	ErrEmptyInput = errors.New("no voiced frequency samples")

	// ErrInvalidFrequency is returned for non-positive frequency samples.
	ErrInvalidFrequency = errors.New("frequency sample must be positive")

	// ErrInvalidTonic is returned for a non-positive tonic frequency.
	ErrInvalidTonic = errors.New("tonic frequency must be positive")
)

// PitchClassCount is the number of semitone classes in an octave.
const PitchClassCount = 12

// SwaraClassNames gives a representative swara label for each semitone
// class relative to Sa. Classes 3, 9 and 10 are shared by two variants
// (R3/G2, D2/N1, D3/N2); the more common label is used.
var SwaraClassNames = [PitchClassCount]string{
	"S", "R1", "R2", "G2", "G3", "M1", "M2", "P", "D1", "D2", "N2", "N3",
}
