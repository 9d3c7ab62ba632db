package fit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// system is a dense complex least-squares problem a·x ≈ b with a stored
// row-major.
type system struct {
	rows, cols int
	a          []complex128
	b          []complex128
}

func newSystem(rows, cols int) *system {
	return &system{
		rows: rows,
		cols: cols,
		a:    make([]complex128, rows*cols),
		b:    make([]complex128, rows),
	}
}

func (s *system) set(i, j int, v complex128) {
	s.a[i*s.cols+j] = v
}

// solve returns the minimum-norm least-squares solution and the numerical
// rank of a. The complex system is solved through its real embedding
//
//	[Re a  -Im a] [Re x]   [Re b]
//	[Im a   Re a] [Im x] ≈ [Im b]
//
// whose singular values are those of a, each repeated twice.
func (s *system) solve(rcond float64) ([]complex128, int, error) {
	if rcond < 0 {
		rcond = eps * float64(max(s.rows, s.cols))
	}

	m, n := s.rows, s.cols
	ar := mat.NewDense(2*m, 2*n, nil)
	br := mat.NewDense(2*m, 1, nil)
	for i := range m {
		for j := range n {
			v := s.a[i*n+j]
			ar.Set(i, j, real(v))
			ar.Set(i, j+n, -imag(v))
			ar.Set(i+m, j, imag(v))
			ar.Set(i+m, j+n, real(v))
		}
		br.Set(i, 0, real(s.b[i]))
		br.Set(i+m, 0, imag(s.b[i]))
	}

	var svd mat.SVD
	if ok := svd.Factorize(ar, mat.SVDThin); !ok {
		return nil, 0, fmt.Errorf("%w: SVD did not converge for %d×%d system", ErrSolve, m, n)
	}

	x := make([]complex128, n)
	rank := svd.Rank(rcond)
	if rank == 0 {
		return x, 0, nil
	}

	var sol mat.Dense
	svd.SolveTo(&sol, br, rank)
	for j := range x {
		x[j] = complex(sol.At(j, 0), sol.At(j+n, 0))
	}
	return x, rank / 2, nil
}

// eps is the float64 machine epsilon.
const eps = 0x1p-52
