package mismatch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ringdown/waveform"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"
)

// Mismatch returns the mismatch between a and b over the modes selected by
// sel and the window (t1, t2]. Neither input is modified.
//
// b is windowed like a when both windows hold the same number of samples;
// otherwise b is resampled onto a's windowed time axis.
func Mismatch(a, b *waveform.Modes, sel waveform.ModeSelection, t1, t2 float64) (float64, error) {
	if a.EllMin != b.EllMin || a.EllMax != b.EllMax {
		return 0, fmt.Errorf("%w: ell ranges [%d, %d] and [%d, %d]",
			waveform.ErrShapeMismatch, a.EllMin, a.EllMax, b.EllMin, b.EllMax)
	}

	aw := WindowOf(a, t1, t2)
	aw.Restrict(sel)
	if aw.Len() < 2 {
		return 0, fmt.Errorf("%w: (%v, %v] holds %d samples", ErrEmptyWindow, t1, t2, aw.Len())
	}

	bw := WindowOf(b, t1, t2)
	if bw.Len() != aw.Len() {
		var err error
		bw, err = b.Interpolate(aw.T)
		if err != nil {
			return 0, fmt.Errorf("mismatch: resample: %w", err)
		}
	}
	bw.Restrict(sel)

	ea, eb := Energy(aw), Energy(bw)
	if ea == 0 || eb == 0 {
		return 0, ErrZeroEnergy
	}

	return 1 - Overlap(aw, bw)/math.Sqrt(ea*eb), nil
}

// WindowOf returns a copy of w restricted to the samples strictly after the
// one nearest t1, up to and including the one nearest t2.
func WindowOf(w *waveform.Modes, t1, t2 float64) *waveform.Modes {
	return w.Window(w.NearestIndex(t1)+1, w.NearestIndex(t2)+1)
}

// Energy returns ∫‖w‖² dt, the time integral of the total power across modes.
// It is zero for waveforms with fewer than two samples.
func Energy(w *waveform.Modes) float64 {
	if w.Len() < 2 {
		return 0
	}
	return integrate.Trapezoidal(w.T, w.Norm())
}

// Overlap returns ∫ Re Σ_lm a_lm conj(b_lm) dt on a's time axis. Both
// waveforms must share the axis length and mode range.
func Overlap(a, b *waveform.Modes) float64 {
	n := a.Len()
	if n < 2 {
		return 0
	}

	ar, ai := make([]float64, n), make([]float64, n)
	br, bi := make([]float64, n), make([]float64, n)
	prod := make([]float64, n)
	inner := make([]float64, n)
	for j := range a.NumModes() {
		a.Parts(j, ar, ai)
		b.Parts(j, br, bi)
		vecmath.MulBlock(prod, ar, br)
		vecmath.AddBlockInPlace(inner, prod)
		vecmath.MulBlock(prod, ai, bi)
		vecmath.AddBlockInPlace(inner, prod)
	}
	return integrate.Trapezoidal(a.T, inner)
}
