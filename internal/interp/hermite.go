package interp

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Hermite4Complex applies [Hermite4] independently to the real and imaginary parts.
func Hermite4Complex(t float64, xm1, x0, x1, x2 complex128) complex128 {
	return complex(
		Hermite4(t, real(xm1), real(x0), real(x1), real(x2)),
		Hermite4(t, imag(xm1), imag(x0), imag(x1), imag(x2)),
	)
}
