package tonal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scaleTone returns the frequency semitones above the tonic.
func scaleTone(tonicHz float64, semitones int) float64 {
	return tonicHz * math.Pow(2, float64(semitones)/12.0)
}

func TestProjector_NormalizedOutput(t *testing.T) {
	tonic := 146.8
	samples := []float64{
		scaleTone(tonic, 0), scaleTone(tonic, 4), scaleTone(tonic, 7),
		scaleTone(tonic, 12), scaleTone(tonic, 16),
	}

	p := NewPitchClassProjector()
	dist, err := p.Project(samples, tonic)
	require.NoError(t, err)

	require.Len(t, dist.Bins, PitchClassCount)
	assert.Equal(t, len(samples), dist.SampleCount)

	sum := 0.0
	for _, v := range dist.Bins {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestProjector_ClassMapping(t *testing.T) {
	tonic := 220.0
	samples := []float64{
		scaleTone(tonic, 0),  // Sa
		scaleTone(tonic, 7),  // Pa
		scaleTone(tonic, 7),  // Pa
		scaleTone(tonic, 19), // Pa, octave up
	}

	p := NewPitchClassProjector()
	dist, err := p.Project(samples, tonic)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, dist.Bins[0], 1e-12)
	assert.InDelta(t, 0.75, dist.Bins[7], 1e-12)
	for class, v := range dist.Bins {
		if class != 0 && class != 7 {
			assert.Zero(t, v, "class %d", class)
		}
	}
}

func TestProjector_OctaveInvariance(t *testing.T) {
	tonic := 132.0
	samples := []float64{
		scaleTone(tonic, 0), scaleTone(tonic, 2), scaleTone(tonic, 4),
		scaleTone(tonic, 5), scaleTone(tonic, 9), scaleTone(tonic, 11),
		scaleTone(tonic, 14), 137.3, 260.9,
	}

	doubled := make([]float64, len(samples))
	for i, f := range samples {
		doubled[i] = 2 * f
	}

	p := NewPitchClassProjector()
	base, err := p.Project(samples, tonic)
	require.NoError(t, err)
	shifted, err := p.Project(doubled, tonic)
	require.NoError(t, err)

	for class := range base.Bins {
		assert.InDelta(t, base.Bins[class], shifted.Bins[class], 1e-12, "class %d", class)
	}
}

func TestProjector_QuantizationWrap(t *testing.T) {
	// 1180 cents above the tonic rounds up past the octave and must wrap
	// back onto Sa.
	tonic := 200.0
	sample := tonic * math.Pow(2, 1180.0/1200.0)

	p := NewPitchClassProjector()
	dist, err := p.Project([]float64{sample}, tonic)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist.Bins[0])
}

func TestProjector_BelowTonic(t *testing.T) {
	// A sample a fifth below the tonic sits at class 5 after wrapping.
	tonic := 300.0
	sample := scaleTone(tonic, -7)

	p := NewPitchClassProjector()
	dist, err := p.Project([]float64{sample}, tonic)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist.Bins[5])
}

func TestProjector_EmptyInput(t *testing.T) {
	p := NewPitchClassProjector()
	_, err := p.Project(nil, 220.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestProjector_InvalidTonic(t *testing.T) {
	p := NewPitchClassProjector()
	for _, tonic := range []float64{0, -220.0, math.NaN(), math.Inf(1)} {
		_, err := p.Project([]float64{220.0}, tonic)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTonic)
	}
}

func TestProjector_InvalidSample(t *testing.T) {
	p := NewPitchClassProjector()
	_, err := p.Project([]float64{220.0, -1.0}, 220.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestDistribution_Entropy(t *testing.T) {
	concentrated := PitchClassDistribution{Bins: []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}}
	assert.Zero(t, concentrated.Entropy())

	uniform := PitchClassDistribution{Bins: make([]float64, PitchClassCount)}
	for i := range uniform.Bins {
		uniform.Bins[i] = 1.0 / PitchClassCount
	}
	assert.InDelta(t, math.Log2(PitchClassCount), uniform.Entropy(), 1e-9)
}
