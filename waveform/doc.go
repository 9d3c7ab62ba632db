// Package waveform provides the multi-mode complex time series used for
// gravitational-wave ringdown data.
//
// A [Modes] value pairs an ascending real time axis with a row-major
// (time × mode) complex array. Columns enumerate every spin-weighted
// spherical mode (ℓ, m) with EllMin ≤ ℓ ≤ EllMax and -ℓ ≤ m ≤ ℓ, ℓ-major and
// m-minor, so that column [LMIndex](ℓ, m, EllMin) holds mode (ℓ, m).
//
// # Usage
//
//	w, err := waveform.Construct("ringdown", fill, t, 2, 4)
//	sub := w.Window(w.NearestIndex(0)+1, w.NearestIndex(100)+1)
//	power := sub.Norm() // Σ_lm |h_lm(t)|² per sample
package waveform
