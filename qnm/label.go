package qnm

import "fmt"

// SpinWeight is the spin weight of the gravitational-wave strain modes.
const SpinWeight = -2

// Label identifies one QNM branch by angular index ℓ, azimuthal index m,
// overtone n and sign branch (+1 prograde family, -1 mirror family).
type Label struct {
	Ell  int
	M    int
	N    int
	Sign int
}

func (l Label) String() string {
	return fmt.Sprintf("(%d,%d,%d,%+d)", l.Ell, l.M, l.N, l.Sign)
}

// Validate checks the sign branch and the index ranges.
func (l Label) Validate() error {
	if l.Sign != 1 && l.Sign != -1 {
		return fmt.Errorf("%w: last element of mode label must be +1 or -1, got %d", ErrInvalidArgument, l.Sign)
	}
	if l.Ell < 0 || l.M < -l.Ell || l.M > l.Ell || l.N < 0 {
		return fmt.Errorf("%w: invalid mode label %v", ErrInvalidArgument, l)
	}
	return nil
}

// FamilyKey identifies a mode family (spin weight s, ℓ, m, n) as the oracle
// sees it.
type FamilyKey struct {
	S   int
	Ell int
	M   int
	N   int
}

func (k FamilyKey) String() string {
	return fmt.Sprintf("s=%d (%d,%d,%d)", k.S, k.Ell, k.M, k.N)
}
