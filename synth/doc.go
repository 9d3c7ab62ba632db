// Package synth builds multi-mode ringdown waveforms from weighted
// quasinormal-mode terms.
//
// A waveform is the superposition of [Term] values. A [QNM] term contributes
//
//	A · exp(-iω(t - t_ref)) · C_ℓ'
//
// to every spherical mode (ℓ', m) sharing its azimuthal number, with ω and the
// mixing coefficients C resolved through a [qnm.Oracle]. An [Other] term adds a
// single damped sinusoid of explicit frequency into one target mode.
//
// The remnant spin and mass come from a [Background]: a constant background
// resolves each term once and evaluates the exponential over the whole axis,
// a time-varying one resolves every term at every sample.
package synth
