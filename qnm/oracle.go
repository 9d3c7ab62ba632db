package qnm

// Solution is one oracle answer: the dimensionless frequency M·ω and the
// spherical-spheroidal mixing coefficients, indexed like [AngularElls].
type Solution struct {
	MOmega complex128
	C      []complex128
}

// Family answers for one (s, ℓ, m, n) mode family as a function of spin.
type Family interface {
	// Solve returns a high-precision solution or an error wrapping
	// [ErrUnavailable].
	Solve(spin float64) (Solution, error)
	// Interpolate returns a lower-precision estimate.
	Interpolate(spin float64) (Solution, error)
	// LMax is the largest ℓ carried by the mixing coefficients.
	LMax() int
}

// Oracle resolves mode families.
type Oracle interface {
	Family(key FamilyKey) (Family, error)
}

// AngularElls returns the ℓ values indexing mixing coefficients of spin
// weight s and azimuthal number m, from max(|s|, |m|) to lMax inclusive.
func AngularElls(s, m, lMax int) []int {
	lo := max(abs(s), abs(m))
	if lMax < lo {
		return nil
	}
	ells := make([]int, 0, lMax-lo+1)
	for l := lo; l <= lMax; l++ {
		ells = append(ells, l)
	}
	return ells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
