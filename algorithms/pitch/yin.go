package pitch

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// differenceFunction computes the YIN difference function
//
//	d(tau) = sum_{j<W} (x[j] - x[j+tau])^2,  W = len(x)/2
//
// either directly or, for large frames, through FFT cross-correlation.
// Both paths produce the same values up to rounding.
func (t *Tracker) differenceFunction(x []float64) []float64 {
	if len(x) >= t.params.FFTThreshold {
		return differenceFFT(x)
	}
	return differenceDirect(x)
}

// differenceDirect is the O(W^2) textbook calculation.
func differenceDirect(x []float64) []float64 {
	w := len(x) / 2
	diff := make([]float64, w)
	for tau := 0; tau < w; tau++ {
		sum := 0.0
		for j := 0; j < w; j++ {
			delta := x[j] - x[j+tau]
			sum += delta * delta
		}
		diff[tau] = sum
	}
	return diff
}

// differenceFFT expands the squared difference into power terms and a
// cross-correlation, computing the latter in the frequency domain:
//
//	d(tau) = p(0) + p(tau) - 2*r(tau)
//	p(tau) = sum_{j=tau}^{tau+W-1} x[j]^2
//	r(tau) = sum_{j<W} x[j] * x[j+tau]
func differenceFFT(x []float64) []float64 {
	n := len(x)
	w := n / 2

	// Sliding window energy
	power := make([]float64, w)
	for j := 0; j < w; j++ {
		power[0] += x[j] * x[j]
	}
	for tau := 1; tau < w; tau++ {
		power[tau] = power[tau-1] - x[tau-1]*x[tau-1] + x[tau+w-1]*x[tau+w-1]
	}

	// Cross-correlation of the first half against the whole frame.
	// Padding to at least n+w keeps circular wraparound out of the lags
	// we read.
	m := nextPowerOf2(n + w)
	head := make([]float64, m)
	copy(head, x[:w])
	full := make([]float64, m)
	copy(full, x)

	headSpec := fft.FFTReal(head)
	fullSpec := fft.FFTReal(full)

	cross := make([]complex128, m)
	for i := range cross {
		cross[i] = cmplx.Conj(headSpec[i]) * fullSpec[i]
	}
	corr := fft.IFFT(cross)

	diff := make([]float64, w)
	for tau := 0; tau < w; tau++ {
		diff[tau] = power[0] + power[tau] - 2*real(corr[tau])
	}
	return diff
}

// cumulativeMeanNormalize converts the difference function into the
// cumulative mean normalized difference (CMNDF), which starts at 1 and
// dips toward 0 at multiples of the period.
func cumulativeMeanNormalize(diff []float64) []float64 {
	cmndf := make([]float64, len(diff))
	if len(diff) == 0 {
		return cmndf
	}
	cmndf[0] = 1.0

	runningSum := 0.0
	for tau := 1; tau < len(diff); tau++ {
		runningSum += diff[tau]
		if runningSum == 0 {
			cmndf[tau] = 1.0
			continue
		}
		cmndf[tau] = diff[tau] / (runningSum / float64(tau))
	}
	return cmndf
}

// parabolicInterpolation refines a minimum location on the CMNDF to
// sub-sample resolution.
func parabolicInterpolation(data []float64, peakIdx int) float64 {
	if peakIdx <= 0 || peakIdx >= len(data)-1 {
		return float64(peakIdx)
	}

	y1 := data[peakIdx-1]
	y2 := data[peakIdx]
	y3 := data[peakIdx+1]

	a := (y1 - 2*y2 + y3) / 2
	b := (y3 - y1) / 2

	if a == 0 {
		return float64(peakIdx)
	}

	return float64(peakIdx) - b/(2*a)
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
