package waveform

import "fmt"

// LM is a spherical mode (ℓ, m).
type LM struct {
	Ell int
	M   int
}

func (lm LM) String() string {
	return fmt.Sprintf("(%d,%d)", lm.Ell, lm.M)
}

// LMIndex returns the column of mode (ℓ, m) in an array whose first column is
// (ellMin, -ellMin).
func LMIndex(ell, m, ellMin int) int {
	return ell*(ell+1) - ellMin*ellMin + m
}

// NumModes returns the number of (ℓ, m) pairs with ellMin ≤ ℓ ≤ ellMax.
func NumModes(ellMin, ellMax int) int {
	if ellMax < ellMin {
		return 0
	}
	return (ellMax+1)*(ellMax+1) - ellMin*ellMin
}

// LMRange enumerates all (ℓ, m) pairs of the range in column order.
func LMRange(ellMin, ellMax int) []LM {
	out := make([]LM, 0, NumModes(ellMin, ellMax))
	for l := ellMin; l <= ellMax; l++ {
		for m := -l; m <= l; m++ {
			out = append(out, LM{Ell: l, M: m})
		}
	}
	return out
}

func validateRange(ellMin, ellMax int) error {
	if ellMin < 0 || ellMax < ellMin {
		return fmt.Errorf("%w: ell range [%d, %d]", ErrInvalidRange, ellMin, ellMax)
	}
	return nil
}
