package qnm

import (
	"fmt"
	"math"
)

// fitsLMax bounds the (trivial) mixing arrays returned by [Fits].
const fitsLMax = 12

// fitCoeffs holds the six coefficients of one fitted family:
//
//	M·ω_R = f1 + f2 (1-χ)^f3,  Q = q1 + q2 (1-χ)^q3
type fitCoeffs struct {
	f1, f2, f3 float64
	q1, q2, q3 float64
}

// Berti, Cardoso & Will, Phys. Rev. D 73, 064030 (2006), Table VIII, s = -2.
var fitTable = map[FamilyKey]fitCoeffs{
	{S: -2, Ell: 2, M: 2, N: 0}: {1.5251, -1.1568, 0.1292, 0.7000, 1.4187, -0.4990},
	{S: -2, Ell: 2, M: 2, N: 1}: {1.3673, -1.0260, 0.1628, 0.1000, 0.5436, -0.4731},
	{S: -2, Ell: 2, M: 1, N: 0}: {0.6000, -0.2339, 0.4175, -0.3000, 2.3561, -0.2277},
	{S: -2, Ell: 2, M: 0, N: 0}: {0.4437, -0.0739, 0.3350, 4.0000, -1.9550, 0.1420},
	{S: -2, Ell: 3, M: 3, N: 0}: {1.8956, -1.3043, 0.1818, 0.9000, 2.3430, -0.4810},
	{S: -2, Ell: 3, M: 2, N: 0}: {1.1481, -0.5552, 0.3002, 0.8313, 2.3773, -0.3655},
	{S: -2, Ell: 4, M: 4, N: 0}: {2.3000, -1.5056, 0.2244, 1.1929, 3.1191, -0.4825},
}

// Fits is an [Oracle] backed by closed-form fitting formulas. It never
// solves to high precision: every answer comes from [Family.Interpolate],
// with percent-level accuracy and identity mixing (spheroidal = spherical).
type Fits struct{}

// Family implements [Oracle].
func (Fits) Family(key FamilyKey) (Family, error) {
	c, ok := fitTable[key]
	if !ok {
		return nil, fmt.Errorf("%w: no fit for %v", ErrUnknownMode, key)
	}
	return fitFamily{key: key, c: c}, nil
}

// Keys lists the families covered by the fitting formulas.
func (Fits) Keys() []FamilyKey {
	keys := make([]FamilyKey, 0, len(fitTable))
	for k := range fitTable {
		keys = append(keys, k)
	}
	return keys
}

type fitFamily struct {
	key FamilyKey
	c   fitCoeffs
}

func (f fitFamily) LMax() int { return fitsLMax }

func (f fitFamily) Solve(float64) (Solution, error) {
	return Solution{}, fmt.Errorf("%w: %v is fit-only", ErrUnavailable, f.key)
}

func (f fitFamily) Interpolate(spin float64) (Solution, error) {
	if !(spin >= 0 && spin < 1) {
		return Solution{}, fmt.Errorf("%w: spin must be in [0, 1): %v", ErrInvalidArgument, spin)
	}
	x := 1 - spin
	wr := f.c.f1 + f.c.f2*math.Pow(x, f.c.f3)
	q := f.c.q1 + f.c.q2*math.Pow(x, f.c.q3)

	ells := AngularElls(f.key.S, f.key.M, fitsLMax)
	c := make([]complex128, len(ells))
	for i, l := range ells {
		if l == f.key.Ell {
			c[i] = 1
		}
	}

	return Solution{
		MOmega: complex(wr, -wr/(2*q)),
		C:      c,
	}, nil
}
