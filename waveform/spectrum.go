package waveform

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// uniformTol is the relative spacing deviation accepted as uniform sampling.
const uniformTol = 1e-6

// SampleInterval returns the spacing of a uniformly sampled axis.
func (w *Modes) SampleInterval() (float64, error) {
	if len(w.T) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples", ErrNonUniform)
	}
	dt := (w.T[len(w.T)-1] - w.T[0]) / float64(len(w.T)-1)
	for i := 1; i < len(w.T); i++ {
		if math.Abs(w.T[i]-w.T[i-1]-dt) > uniformTol*dt {
			return 0, fmt.Errorf("%w: step %v at index %d, mean %v", ErrNonUniform, w.T[i]-w.T[i-1], i, dt)
		}
	}
	return dt, nil
}

// PeakFrequency estimates the dominant angular frequency of mode lm, signed
// for the exp(-iωt) convention used by ringdown models (a prograde mode with
// m > 0 yields ω > 0). The column is zero-padded to a power of two, and the
// peak bin is refined by parabolic interpolation of neighbouring magnitudes.
func (w *Modes) PeakFrequency(lm LM) (float64, error) {
	j, err := w.Index(lm)
	if err != nil {
		return 0, err
	}
	dt, err := w.SampleInterval()
	if err != nil {
		return 0, err
	}

	fftSize := nextPowerOf2(len(w.T))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("waveform: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	copy(in, w.Column(j))
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("waveform: forward FFT failed: %w", err)
	}

	mag := make([]float64, fftSize)
	peak := 0
	for k, x := range out {
		mag[k] = cmplx.Abs(x)
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	prev := mag[(peak-1+fftSize)%fftSize]
	next := mag[(peak+1)%fftSize]
	offset := 0.0
	if den := prev - 2*mag[peak] + next; den != 0 {
		offset = 0.5 * (prev - next) / den
	}

	bin := float64(peak) + offset
	if peak >= fftSize/2 {
		bin -= float64(fftSize)
	}

	// The forward DFT of exp(-iωt) peaks at frequency -ω/2π.
	return -2 * math.Pi * bin / (float64(fftSize) * dt), nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
