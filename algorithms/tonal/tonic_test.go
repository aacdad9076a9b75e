package tonal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTonicEstimator_ModalBin(t *testing.T) {
	// Cluster of samples around 146.8 Hz (D3) with sparse excursions.
	samples := []float64{
		146.8, 146.9, 146.7, 146.8, 146.85, 146.75, 146.8,
		220.0, 196.0, 329.6, 110.0,
	}

	te := NewTonicEstimator()
	tonic, err := te.Estimate(samples)
	require.NoError(t, err)

	binWidth := (329.6 - 110.0) / float64(DefaultTonicBins)
	assert.InDelta(t, 146.8, tonic, binWidth, "tonic should land in the dense cluster")
	assert.LessOrEqual(t, tonic, 146.9, "modal bin left edge cannot exceed the cluster")
}

func TestTonicEstimator_Deterministic(t *testing.T) {
	samples := []float64{130.8, 145.2, 130.9, 131.0, 196.0, 130.85, 261.6}

	te := NewTonicEstimatorWithBins(50)
	first, err := te.Estimate(samples)
	require.NoError(t, err)

	for k := 0; k < 5; k++ {
		again, err := te.Estimate(samples)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTonicEstimator_SingleBin(t *testing.T) {
	samples := []float64{100.0, 150.0, 150.0, 200.0}

	// One bin spans the whole range; its left edge is the minimum.
	te := NewTonicEstimatorWithBins(1)
	tonic, err := te.Estimate(samples)
	require.NoError(t, err)
	assert.Equal(t, 100.0, tonic)
}

func TestTonicEstimator_ConstantInput(t *testing.T) {
	te := NewTonicEstimator()
	tonic, err := te.Estimate([]float64{233.1, 233.1, 233.1})
	require.NoError(t, err)
	assert.Equal(t, 233.1, tonic)
}

func TestTonicEstimator_EmptyInput(t *testing.T) {
	te := NewTonicEstimator()
	_, err := te.Estimate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestTonicEstimator_RejectsNonPositive(t *testing.T) {
	te := NewTonicEstimator()
	for _, bad := range [][]float64{
		{220.0, 0.0, 330.0},
		{220.0, -5.0},
		{math.NaN()},
		{math.Inf(1)},
	} {
		_, err := te.Estimate(bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidFrequency)
	}
}

func TestTonicEstimator_BinCountFallback(t *testing.T) {
	te := NewTonicEstimatorWithBins(-3)
	assert.Equal(t, DefaultTonicBins, te.BinCount())
}
