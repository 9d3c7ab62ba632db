package qnm

import (
	"fmt"

	"github.com/cwbudde/algo-ringdown/internal/interp"
)

// nodeTol is the spin distance within which a tabulated node counts as an
// exact solution.
const nodeTol = 1e-12

// SpinGrid is a uniform spin grid of N nodes: Start, Start+Step, ...
type SpinGrid struct {
	Start float64
	Step  float64
	N     int
}

func (g SpinGrid) grid() interp.Grid {
	return interp.Grid{Start: g.Start, Step: g.Step, N: g.N}
}

// Node returns the spin at node i.
func (g SpinGrid) Node(i int) float64 {
	return g.grid().Node(i)
}

// Table is an [Oracle] over families tabulated on uniform spin grids.
// Spins on a node are returned verbatim by Solve; spins between nodes
// are only available through Interpolate.
type Table struct {
	families map[FamilyKey]*tableFamily
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{families: make(map[FamilyKey]*tableFamily)}
}

// Add registers a family. nodes[i] is the solution at grid.Node(i); every
// node must carry len(AngularElls(key.S, key.M, lMax)) mixing coefficients.
func (t *Table) Add(key FamilyKey, grid SpinGrid, lMax int, nodes []Solution) error {
	g := grid.grid()
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %v: %w", ErrInvalidArgument, key, err)
	}
	if len(nodes) != g.N {
		return fmt.Errorf("%w: %v: %d nodes for grid of %d", ErrInvalidArgument, key, len(nodes), g.N)
	}

	nc := len(AngularElls(key.S, key.M, lMax))
	if nc == 0 {
		return fmt.Errorf("%w: %v: lMax %d below min ell", ErrInvalidArgument, key, lMax)
	}

	fam := &tableFamily{
		key:    key,
		grid:   g,
		lMax:   lMax,
		momega: make([]complex128, g.N),
		c:      make([][]complex128, nc),
	}
	for j := range fam.c {
		fam.c[j] = make([]complex128, g.N)
	}
	for i, sol := range nodes {
		if len(sol.C) != nc {
			return fmt.Errorf("%w: %v node %d: %d mixing coefficients, want %d",
				ErrInvalidArgument, key, i, len(sol.C), nc)
		}
		fam.momega[i] = sol.MOmega
		for j, c := range sol.C {
			fam.c[j][i] = c
		}
	}

	t.families[key] = fam
	return nil
}

// Family implements [Oracle].
func (t *Table) Family(key FamilyKey) (Family, error) {
	fam, ok := t.families[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v not tabulated", ErrUnknownMode, key)
	}
	return fam, nil
}

// Tabulate samples families of src on grid and returns them as a [Table].
// Each node is solved, falling back to interpolation like [Lookup] does.
func Tabulate(src Oracle, grid SpinGrid, keys ...FamilyKey) (*Table, error) {
	t := NewTable()
	for _, key := range keys {
		fam, err := src.Family(key)
		if err != nil {
			return nil, err
		}

		nodes := make([]Solution, grid.N)
		for i := range nodes {
			spin := grid.Node(i)
			sol, err := fam.Solve(spin)
			if err != nil {
				sol, err = fam.Interpolate(spin)
				if err != nil {
					return nil, fmt.Errorf("tabulate %v at spin %v: %w", key, spin, err)
				}
			}
			nodes[i] = sol
		}

		if err := t.Add(key, grid, fam.LMax(), nodes); err != nil {
			return nil, err
		}
	}
	return t, nil
}

type tableFamily struct {
	key    FamilyKey
	grid   interp.Grid
	lMax   int
	momega []complex128
	c      [][]complex128 // c[j][i]: coefficient j at node i
}

func (f *tableFamily) LMax() int { return f.lMax }

func (f *tableFamily) Solve(spin float64) (Solution, error) {
	i, on := f.grid.Nearest(spin, nodeTol)
	if !on {
		return Solution{}, fmt.Errorf("%w: %v spin %v is not tabulated", ErrUnavailable, f.key, spin)
	}
	c := make([]complex128, len(f.c))
	for j := range c {
		c[j] = f.c[j][i]
	}
	return Solution{MOmega: f.momega[i], C: c}, nil
}

func (f *tableFamily) Interpolate(spin float64) (Solution, error) {
	w, err := f.grid.Eval(f.momega, spin)
	if err != nil {
		return Solution{}, fmt.Errorf("%w: %v: %w", ErrInvalidArgument, f.key, err)
	}
	c := make([]complex128, len(f.c))
	for j := range c {
		c[j], err = f.grid.Eval(f.c[j], spin)
		if err != nil {
			return Solution{}, err
		}
	}
	return Solution{MOmega: w, C: c}, nil
}
