package waveform

import (
	"testing"

	"github.com/cwbudde/algo-ringdown/internal/testutil"
	"github.com/stretchr/testify/require"
)

func ramp(t *testing.T, n int) *Modes {
	t.Helper()
	w, err := Construct("ramp", func(ax []float64, lm []LM) ([]complex128, error) {
		data := make([]complex128, len(ax)*len(lm))
		for i, x := range ax {
			for j, mode := range lm {
				data[i*len(lm)+j] = complex(x, float64(mode.Ell*10+mode.M))
			}
		}
		return data, nil
	}, testutil.UniformAxis(0, 1, n), 2, 3)
	require.NoError(t, err)
	return w
}

func TestConstructShape(t *testing.T) {
	w := ramp(t, 10)
	require.Equal(t, "ramp", w.Label)
	require.Equal(t, 10, w.Len())
	require.Equal(t, 12, w.NumModes())

	j, err := w.Index(LM{Ell: 3, M: -1})
	require.NoError(t, err)
	require.Equal(t, complex(4, 29), w.At(4, j))

	_, err = w.Index(LM{Ell: 4, M: 0})
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestConstructRejectsBadShapes(t *testing.T) {
	short := func(ax []float64, lm []LM) ([]complex128, error) {
		return make([]complex128, len(ax)*len(lm)-1), nil
	}
	_, err := Construct("short", short, []float64{0, 1}, 2, 2)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = New([]float64{0, 1, 1}, make([]complex128, 15), 2, 2)
	require.ErrorIs(t, err, ErrInvalidAxis)

	_, err = New(nil, nil, 2, 2)
	require.ErrorIs(t, err, ErrInvalidAxis)

	_, err = New([]float64{0}, make([]complex128, 5), 3, 2)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestWindowOffByOneConvention(t *testing.T) {
	w := ramp(t, 100)

	i1 := w.NearestIndex(0) + 1
	i2 := w.NearestIndex(100) + 1
	require.Equal(t, 1, i1)
	require.Equal(t, 100, i2)

	sub := w.Window(i1, i2)
	require.Equal(t, 99, sub.Len())
	require.Equal(t, 1.0, sub.T[0])
	require.Equal(t, 99.0, sub.T[sub.Len()-1])
	require.Equal(t, w.Row(1), sub.Row(0))

	sub = w.Window(w.NearestIndex(10)+1, w.NearestIndex(20.4)+1)
	require.Equal(t, 11.0, sub.T[0])
	require.Equal(t, 20.0, sub.T[sub.Len()-1])

	require.Zero(t, w.Window(150, 200).Len())
}

func TestNearestIndexTakesFirstTie(t *testing.T) {
	w := ramp(t, 4)
	require.Equal(t, 1, w.NearestIndex(1.5))
	require.Equal(t, 0, w.NearestIndex(-3))
	require.Equal(t, 3, w.NearestIndex(42))
}

func TestCopyIsDeep(t *testing.T) {
	w := ramp(t, 3)
	c := w.Copy()
	c.Data[0] = 99
	c.T[0] = -1
	require.NotEqual(t, c.Data[0], w.Data[0])
	require.Equal(t, 0.0, w.T[0])
}

func TestRestrictZeroesUnselectedColumns(t *testing.T) {
	w := ramp(t, 5)
	w.Restrict(ModeList(LM{Ell: 2, M: 2}))

	for j, lm := range w.Pairs() {
		col := w.Column(j)
		if lm == (LM{Ell: 2, M: 2}) {
			require.Equal(t, complex(3, 22), col[3])
			continue
		}
		require.Equal(t, make([]complex128, 5), col, "mode %v", lm)
	}
}

func TestNormSumsPowerAcrossModes(t *testing.T) {
	w, err := Zeros([]float64{0, 1}, 2, 2)
	require.NoError(t, err)
	w.SetColumn(LMIndex(2, 2, 2), []complex128{3 + 4i, 1})
	w.SetColumn(LMIndex(2, -1, 2), []complex128{1i, 2})

	testutil.RequireSliceNearlyEqual(t, w.Norm(), []float64{26, 5}, 1e-12)
}

func TestInterpolateReproducesSmoothSignal(t *testing.T) {
	ax := testutil.UniformAxis(0, 0.5, 80)
	omega := complex(0.4, -0.05)
	tone := testutil.DampedTone(omega, 1, ax, 0)

	w, err := Zeros(ax, 2, 2)
	require.NoError(t, err)
	j := LMIndex(2, 2, 2)
	w.SetColumn(j, tone)

	fine := testutil.UniformAxis(1.25, 0.5, 70)
	out, err := w.Interpolate(fine)
	require.NoError(t, err)
	require.Equal(t, fine, out.T)

	testutil.RequireComplexNearlyEqual(t, out.Column(j), testutil.DampedTone(omega, 1, fine, 0), 1e-3)
	testutil.RequireComplexNearlyEqual(t, out.Column(LMIndex(2, 0, 2)), make([]complex128, len(fine)), 0)
}

func TestInterpolateExactOnOriginalNodes(t *testing.T) {
	w := ramp(t, 6)
	out, err := w.Interpolate(w.T)
	require.NoError(t, err)
	testutil.RequireComplexNearlyEqual(t, out.Data, w.Data, 1e-12)

	_, err = w.Window(0, 1).Interpolate([]float64{0})
	require.ErrorIs(t, err, ErrInvalidAxis)
}

func TestInterpolateConvergesWithRefinement(t *testing.T) {
	omega := complex(0.4, -0.05)
	fine := testutil.UniformAxis(0.1, 0.2, 190)
	want := testutil.DampedTone(omega, 1, fine, 0)
	j := LMIndex(2, 2, 2)

	errAt := func(step float64, n int) float64 {
		ax := testutil.UniformAxis(0, step, n)
		w, err := Zeros(ax, 2, 2)
		require.NoError(t, err)
		w.SetColumn(j, testutil.DampedTone(omega, 1, ax, 0))

		out, err := w.Interpolate(fine)
		require.NoError(t, err)
		d, err := testutil.MaxAbsDiff(out.Column(j), want)
		require.NoError(t, err)
		return d
	}

	coarse := errAt(1, 41)
	half := errAt(0.5, 81)
	require.Greater(t, coarse, 0.0)
	require.Less(t, half, coarse/8)
}
