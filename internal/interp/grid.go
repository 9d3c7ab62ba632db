package interp

import (
	"errors"
	"fmt"
	"math"
)

var errOutOfRange = errors.New("value outside grid")

// Grid is a uniform 1-D grid of N nodes starting at Start with spacing Step.
type Grid struct {
	Start float64
	Step  float64
	N     int
}

// Validate reports whether the grid can support interpolation.
func (g Grid) Validate() error {
	if g.N < 2 {
		return fmt.Errorf("grid needs at least 2 nodes: %d", g.N)
	}
	if !(g.Step > 0) || math.IsInf(g.Step, 0) {
		return fmt.Errorf("grid step must be > 0: %v", g.Step)
	}
	return nil
}

// Node returns the coordinate of node i.
func (g Grid) Node(i int) float64 {
	return g.Start + float64(i)*g.Step
}

// End returns the coordinate of the last node.
func (g Grid) End() float64 {
	return g.Node(g.N - 1)
}

// Nearest returns the index of the node closest to x and whether x lies on it
// within tol.
func (g Grid) Nearest(x, tol float64) (int, bool) {
	i := int(math.Round((x - g.Start) / g.Step))
	if i < 0 || i >= g.N {
		return 0, false
	}
	return i, math.Abs(g.Node(i)-x) <= tol
}

// Bracket locates the segment [i, i+1] containing x and the fractional
// position within it.
func (g Grid) Bracket(x float64) (int, float64, error) {
	if err := g.Validate(); err != nil {
		return 0, 0, err
	}
	if x < g.Start || x > g.End() {
		return 0, 0, fmt.Errorf("%w: %v not in [%v, %v]", errOutOfRange, x, g.Start, g.End())
	}
	pos := (x - g.Start) / g.Step
	i := int(math.Floor(pos))
	if i >= g.N-1 {
		i = g.N - 2
	}
	return i, pos - float64(i), nil
}

// Eval interpolates the node values ys at x. Missing neighbours at the grid
// edges are replaced by linearly extrapolated ghost nodes.
func (g Grid) Eval(ys []complex128, x float64) (complex128, error) {
	if len(ys) != g.N {
		return 0, fmt.Errorf("node count %d does not match grid size %d", len(ys), g.N)
	}
	i, frac, err := g.Bracket(x)
	if err != nil {
		return 0, err
	}
	x0, x1 := ys[i], ys[i+1]
	xm1 := 2*x0 - x1
	if i > 0 {
		xm1 = ys[i-1]
	}
	x2 := 2*x1 - x0
	if i+2 < g.N {
		x2 = ys[i+2]
	}
	return Hermite4Complex(frac, xm1, x0, x1, x2), nil
}
