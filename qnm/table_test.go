package qnm

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTabulateFitsMatchesNodesAndInterpolates(t *testing.T) {
	key := FamilyKey{S: -2, Ell: 2, M: 2, N: 0}
	grid := SpinGrid{Start: 0, Step: 0.05, N: 19}

	tab, err := Tabulate(Fits{}, grid, key)
	require.NoError(t, err)

	fit, err := Fits{}.Family(key)
	require.NoError(t, err)
	fam, err := tab.Family(key)
	require.NoError(t, err)
	require.Equal(t, fitsLMax, fam.LMax())

	exact, err := fam.Solve(0.7)
	require.NoError(t, err)
	want, err := fit.Interpolate(0.7)
	require.NoError(t, err)
	require.InDelta(t, 0, cmplx.Abs(exact.MOmega-want.MOmega), 1e-12)
	require.Equal(t, want.C, exact.C)

	between, err := fam.Interpolate(0.725)
	require.NoError(t, err)
	want, err = fit.Interpolate(0.725)
	require.NoError(t, err)
	require.InDelta(t, 0, cmplx.Abs(between.MOmega-want.MOmega), 5e-4)
}

func TestTableInterpolateOutsideGrid(t *testing.T) {
	tab := mirrorTable(t)
	fam, err := tab.Family(FamilyKey{S: -2, Ell: 2, M: -2, N: 0})
	require.NoError(t, err)

	_, err = fam.Interpolate(0.9)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTableAddValidates(t *testing.T) {
	key := FamilyKey{S: -2, Ell: 2, M: 2, N: 0}
	tab := NewTable()

	err := tab.Add(key, SpinGrid{Start: 0, Step: 0.5, N: 2}, 3, []Solution{{C: make([]complex128, 2)}})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = tab.Add(key, SpinGrid{Start: 0, Step: 0.5, N: 2}, 3, []Solution{
		{C: make([]complex128, 2)},
		{C: make([]complex128, 3)},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = tab.Add(key, SpinGrid{Start: 0, Step: 0, N: 2}, 3, []Solution{
		{C: make([]complex128, 2)},
		{C: make([]complex128, 2)},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = tab.Family(key)
	require.ErrorIs(t, err, ErrUnknownMode)
}
