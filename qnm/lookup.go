package qnm

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Mode is a resolved QNM: physical frequency and mixing coefficients.
type Mode struct {
	Omega complex128
	C     []complex128
	Ells  []int
}

// Coef returns the mixing coefficient onto spherical mode ℓ and whether ℓ is
// present in the mixing array.
func (m Mode) Coef(ell int) (complex128, bool) {
	for i, l := range m.Ells {
		if l == ell {
			return m.C[i], true
		}
	}
	return 0, false
}

// Lookup resolves label at the given dimensionless spin and mass.
//
// Frequencies are returned in the same units as mass (ω, not M·ω). For the
// mirror branch (Sign = -1) the family with m negated is queried and
//
//	ω → -conj(ω),  C[ℓ'] → (-1)^(ℓ+ℓ') conj(C[ℓ'])
//
// is applied. A family that cannot Solve is silently interpolated.
func Lookup(o Oracle, label Label, spin, mass float64, s int) (Mode, error) {
	if err := label.Validate(); err != nil {
		return Mode{}, err
	}
	if !(mass > 0) || math.IsInf(mass, 0) {
		return Mode{}, fmt.Errorf("%w: mass must be > 0: %v", ErrInvalidArgument, mass)
	}
	if !(spin >= 0 && spin < 1) {
		return Mode{}, fmt.Errorf("%w: spin must be in [0, 1): %v", ErrInvalidArgument, spin)
	}

	key := FamilyKey{S: s, Ell: label.Ell, M: label.M, N: label.N}
	if label.Sign == -1 {
		key.M = -label.M
	}

	fam, err := o.Family(key)
	if err != nil {
		return Mode{}, fmt.Errorf("qnm family %v: %w", key, err)
	}

	sol, err := fam.Solve(spin)
	if err != nil {
		sol, err = fam.Interpolate(spin)
		if err != nil {
			return Mode{}, fmt.Errorf("qnm family %v at spin %v: %w", key, spin, err)
		}
	}

	ells := AngularElls(s, label.M, fam.LMax())
	if len(sol.C) != len(ells) {
		return Mode{}, fmt.Errorf("qnm family %v: %d mixing coefficients for %d ells", key, len(sol.C), len(ells))
	}

	momega := sol.MOmega
	c := make([]complex128, len(sol.C))
	copy(c, sol.C)

	if label.Sign == -1 {
		momega = -cmplx.Conj(momega)
		for i, l := range ells {
			c[i] = cmplx.Conj(c[i])
			if (label.Ell+l)%2 != 0 {
				c[i] = -c[i]
			}
		}
	}

	return Mode{
		Omega: momega / complex(mass, 0),
		C:     c,
		Ells:  ells,
	}, nil
}
