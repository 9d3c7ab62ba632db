// Package mismatch scores the disagreement between two multi-mode waveforms.
//
// The mismatch over a time window is
//
//	M = 1 - ∫ Re Σ_lm a_lm conj(b_lm) dt / sqrt(∫‖a‖² dt · ∫‖b‖² dt)
//
// with trapezoidal quadrature on the (possibly non-uniform) time axis. It is
// 0 for identical waveforms, 1 for orthogonal ones and up to 2 for waveforms
// of opposite sign; it is not clipped.
//
// The window follows the nearest-sample convention used by ringdown fits:
// it starts one sample after the sample closest to t1 and ends at the sample
// closest to t2, inclusive.
package mismatch
