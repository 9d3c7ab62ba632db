package qnm

import "errors"

var (
	// ErrInvalidArgument reports a malformed label or physical parameter.
	ErrInvalidArgument = errors.New("qnm: invalid argument")
	// ErrUnavailable is returned by [Family.Solve] when no high-precision
	// solution is available and callers should fall back to interpolation.
	ErrUnavailable = errors.New("qnm: high-precision solution unavailable")
	// ErrUnknownMode reports a mode family the oracle cannot answer for.
	ErrUnknownMode = errors.New("qnm: unknown mode family")
)
