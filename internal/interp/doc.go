// Package interp provides the cubic Hermite kernels used to interpolate
// tabulated quasinormal-mode data on a uniform spin grid.
//
//   - [Hermite4]:        4-point cubic Hermite on real samples
//   - [Hermite4Complex]: the same kernel applied to real and imaginary parts
//   - [Grid]:            uniform grid bracketing with ghost-node stencils
package interp
