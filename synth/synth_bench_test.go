package synth

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-ringdown/internal/testutil"
	"github.com/cwbudde/algo-ringdown/qnm"
	"github.com/cwbudde/algo-ringdown/waveform"
)

func BenchmarkSynthesize(b *testing.B) {
	terms := []Term{
		QNM{Mode: qnm.Label{Ell: 2, M: 2, N: 0, Sign: 1}, A: 1},
		QNM{Mode: qnm.Label{Ell: 2, M: 2, N: 1, Sign: 1}, A: 0.5i},
		QNM{Mode: qnm.Label{Ell: 3, M: 3, N: 0, Sign: 1}, A: 0.1},
	}

	for _, n := range []int{256, 4096} {
		ax := testutil.UniformAxis(0, 0.1, n)

		masses := make([]float64, n)
		for i := range masses {
			masses[i] = 1 + 1e-4*float64(i)
		}
		track, err := Track([]float64{0.7}, masses)
		if err != nil {
			b.Fatal(err)
		}

		backgrounds := []struct {
			name string
			bg   Background
		}{
			{"fixed", Fixed(0.7, 1)},
			{"track", track},
		}
		for _, tc := range backgrounds {
			b.Run(tc.name+"_n_"+strconv.Itoa(n), func(b *testing.B) {
				buf := make([]complex128, n*waveform.NumModes(2, 4))

				b.ReportAllocs()
				b.ResetTimer()

				for range b.N {
					if _, err := Synthesize(qnm.Fits{}, tc.bg, terms, ax, 2, 4, WithDest(buf)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
