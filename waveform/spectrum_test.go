package waveform

import (
	"testing"

	"github.com/cwbudde/algo-ringdown/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestPeakFrequencyRecoversTone(t *testing.T) {
	ax := testutil.UniformAxis(0, 0.1, 1024)
	for _, omega := range []float64{0.5, -0.8} {
		w, err := Zeros(ax, 2, 2)
		require.NoError(t, err)
		lm := LM{Ell: 2, M: 2}
		w.SetColumn(LMIndex(2, 2, 2), testutil.DampedTone(complex(omega, 0), 1, ax, 0))

		got, err := w.PeakFrequency(lm)
		require.NoError(t, err)
		// Half a bin is 2π/(2·1024·0.1) ≈ 0.031.
		require.InDelta(t, omega, got, 0.031)
	}
}

func TestPeakFrequencyRequiresUniformAxis(t *testing.T) {
	w, err := Zeros([]float64{0, 1, 3}, 2, 2)
	require.NoError(t, err)

	_, err = w.PeakFrequency(LM{Ell: 2, M: 2})
	require.ErrorIs(t, err, ErrNonUniform)

	_, err = w.PeakFrequency(LM{Ell: 5, M: 2})
	require.ErrorIs(t, err, ErrInvalidRange)
}
