package tonal

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultTonicBins is the default histogram resolution for tonic
// estimation. Higher values sharpen the estimate on long recordings but
// fragment the mode on short ones.
const DefaultTonicBins = 100

// TonicEstimator estimates the tonal reference (Sa) of a recording as
// the most frequently visited frequency region: samples are bucketed
// into a histogram over their observed range and the left edge of the
// modal bin is taken as the tonic.
type TonicEstimator struct {
	binCount int
}

// NewTonicEstimator creates a tonic estimator with the default bin count.
func NewTonicEstimator() *TonicEstimator {
	return NewTonicEstimatorWithBins(DefaultTonicBins)
}

// NewTonicEstimatorWithBins creates a tonic estimator with a custom
// histogram resolution. Non-positive bin counts fall back to the default.
func NewTonicEstimatorWithBins(binCount int) *TonicEstimator {
	if binCount <= 0 {
		binCount = DefaultTonicBins
	}
	return &TonicEstimator{binCount: binCount}
}

// BinCount returns the histogram resolution in use.
func (te *TonicEstimator) BinCount() int {
	return te.binCount
}

// Estimate returns the estimated tonic frequency in Hz. The result is
// deterministic for a fixed input and bin count. Samples must be voiced,
// positive frequencies; an empty input yields ErrEmptyInput.
func (te *TonicEstimator) Estimate(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("tonal: estimate tonic: %w", ErrEmptyInput)
	}
	for i, f := range samples {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("tonal: estimate tonic: sample %d (%v): %w", i, f, ErrInvalidFrequency)
		}
	}

	min := floats.Min(samples)
	max := floats.Max(samples)

	// All samples in one bin: the range is degenerate and the mode is
	// the value itself.
	if max-min < 1e-12 {
		return min, nil
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	dividers := make([]float64, te.binCount+1)
	floats.Span(dividers, min, max)
	// Keep the maximum sample inside the last bin.
	dividers[te.binCount] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	modal := 0
	for i, c := range counts {
		if c > counts[modal] {
			modal = i
		}
	}

	return dividers[modal], nil
}
