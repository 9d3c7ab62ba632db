package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestUniformAxis(t *testing.T) {
	ax := UniformAxis(-1, 0.5, 5)
	RequireSliceNearlyEqual(t, ax, []float64{-1, -0.5, 0, 0.5, 1}, 0)
}

func TestDampedTone(t *testing.T) {
	ax := UniformAxis(0, 1, 4)
	tone := DampedTone(complex(0, -0.5), 2, ax, 1)

	// omega = -0.5i gives exp(-0.5*(t-1)).
	for i, v := range tone {
		want := 2 * math.Exp(-0.5*(ax[i]-1))
		if cmplx.Abs(v-complex(want, 0)) > 1e-12 {
			t.Fatalf("tone[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if math.Abs(real(a[i])) > 1 || math.Abs(imag(a[i])) > 1 {
			t.Fatalf("noise[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestEnergy(t *testing.T) {
	if e := Energy([]complex128{3 + 4i, 1}); e != 26 {
		t.Fatalf("Energy = %v, want 26", e)
	}
}
