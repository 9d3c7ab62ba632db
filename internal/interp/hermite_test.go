package interp

import (
	"math/cmplx"
	"testing"
)

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		got := Hermite4(tc.t, xm1, x0, x1, x2)
		if diff := got - tc.w; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestHermite4ComplexSplitsParts(t *testing.T) {
	got := Hermite4Complex(0.5, complex(-1, 3), complex(0, 2), complex(1, 1), complex(2, 0))
	if cmplx.Abs(got-complex(0.5, 1.5)) > 1e-12 {
		t.Fatalf("got %v want (0.5+1.5i)", got)
	}
}
