package testutil

import (
	"math/cmplx"
	"math/rand"
)

// UniformAxis returns n equally spaced times t0, t0+dt, ...
func UniformAxis(t0, dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + dt*float64(i)
	}
	return out
}

// DampedTone evaluates amp*exp(-i*omega*(t-tRef)) on the axis t.
func DampedTone(omega, amp complex128, t []float64, tRef float64) []complex128 {
	out := make([]complex128, len(t))
	for i, ti := range t {
		out[i] = amp * cmplx.Exp(complex(0, -1)*omega*complex(ti-tRef, 0))
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed for
// reproducibility. Real and imaginary parts are uniform in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Energy returns the sum of |x|^2 over the slice.
func Energy(x []complex128) float64 {
	sum := 0.0
	for _, v := range x {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return sum
}
