package fit

import "errors"

var (
	// ErrUnsupportedTerm reports a term that is not a QNM term.
	ErrUnsupportedTerm = errors.New("fit: only QNM terms can be fitted")
	// ErrNoRows reports an m-group without any target mode to fit against.
	ErrNoRows = errors.New("fit: no target modes for m-group")
	// ErrSolve reports a failed least-squares factorization.
	ErrSolve = errors.New("fit: least-squares solve failed")
)
