package interp

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestGridBracket(t *testing.T) {
	g := Grid{Start: 0, Step: 0.25, N: 5}

	for _, tc := range []struct {
		x    float64
		i    int
		frac float64
	}{
		{x: 0, i: 0, frac: 0},
		{x: 0.3, i: 1, frac: 0.2},
		{x: 1, i: 3, frac: 1},
	} {
		i, frac, err := g.Bracket(tc.x)
		if err != nil {
			t.Fatalf("x=%v: unexpected error %v", tc.x, err)
		}
		if i != tc.i || math.Abs(frac-tc.frac) > 1e-12 {
			t.Fatalf("x=%v: got (%d, %v) want (%d, %v)", tc.x, i, frac, tc.i, tc.frac)
		}
	}

	if _, _, err := g.Bracket(1.01); err == nil {
		t.Fatal("expected error outside grid")
	}
}

func TestGridValidate(t *testing.T) {
	if err := (Grid{Start: 0, Step: 1, N: 1}).Validate(); err == nil {
		t.Fatal("expected error for single node")
	}
	if err := (Grid{Start: 0, Step: 0, N: 3}).Validate(); err == nil {
		t.Fatal("expected error for zero step")
	}
}

func TestGridNearest(t *testing.T) {
	g := Grid{Start: 0.1, Step: 0.1, N: 9}
	i, on := g.Nearest(0.7, 1e-12)
	if i != 6 || !on {
		t.Fatalf("got (%d, %v) want (6, true)", i, on)
	}
	if _, on := g.Nearest(0.73, 1e-12); on {
		t.Fatal("0.73 should not be on a node")
	}
}

func TestGridEvalReproducesCubic(t *testing.T) {
	g := Grid{Start: 0, Step: 0.1, N: 11}
	f := func(x float64) complex128 { return complex(x*x, 1-x) }

	ys := make([]complex128, g.N)
	for i := range ys {
		ys[i] = f(g.Node(i))
	}

	for i := range g.N {
		got, err := g.Eval(ys, g.Node(i))
		if err != nil {
			t.Fatalf("node %d: %v", i, err)
		}
		if cmplx.Abs(got-ys[i]) > 1e-12 {
			t.Fatalf("node %d: got %v want %v", i, got, ys[i])
		}
	}

	got, err := g.Eval(ys, 0.55)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(got-f(0.55)) > 1e-3 {
		t.Fatalf("midpoint: got %v want %v", got, f(0.55))
	}
}
