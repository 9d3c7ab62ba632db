// Package fit fits quasinormal-mode amplitudes to a ringdown waveform by
// linear least squares.
//
// For fixed remnant spin and mass every QNM term is linear in its complex
// amplitude, so the amplitudes solve an overdetermined linear system. Modes
// of different azimuthal number m never mix, so [LLSQ] splits the terms into
// m-groups and solves one system per group: each design-matrix column is the
// unit-amplitude synthesis of one term, flattened over (time × ℓ), and the
// observation is the matching block of the target.
//
// The solve uses a truncated SVD and returns the minimum-norm solution when
// the design matrix is rank deficient.
package fit
