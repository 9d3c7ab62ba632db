// Package qnm resolves quasinormal-mode labels of a Kerr black hole into
// physical complex frequencies and spherical-spheroidal mixing coefficients.
//
// The frequencies themselves come from an [Oracle], an external capability
// that answers per (s, ℓ, m, n) mode family. [Lookup] adapts an oracle to the
// (ℓ, m, n, sign) labelling used by ringdown models: it selects the prograde
// or mirror branch, applies the mirror symmetry and converts from M·ω to ω.
//
// Two oracles ship with the package:
//
//   - [Fits]:  closed-form fitting formulas (Berti, Cardoso & Will 2006) for a
//     handful of dominant families, without spheroidal mixing.
//   - [Table]: families tabulated on a uniform spin grid, interpolated with
//     4-point cubic Hermite kernels.
//
// # Usage
//
//	mode, err := qnm.Lookup(qnm.Fits{}, qnm.Label{Ell: 2, M: 2, N: 0, Sign: 1}, 0.7, 1.0, qnm.SpinWeight)
//	fmt.Println(mode.Omega) // ≈ 0.53 - 0.08i
package qnm
