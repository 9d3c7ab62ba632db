package waveform

import "errors"

var (
	// ErrShapeMismatch reports data or a destination buffer whose size does
	// not match the time axis and mode range.
	ErrShapeMismatch = errors.New("waveform: shape mismatch")
	// ErrInvalidAxis reports an empty or non-ascending time axis.
	ErrInvalidAxis = errors.New("waveform: invalid time axis")
	// ErrInvalidRange reports an invalid ℓ range or an (ℓ, m) outside it.
	ErrInvalidRange = errors.New("waveform: invalid mode range")
	// ErrNonUniform reports a time axis that is not uniformly sampled.
	ErrNonUniform = errors.New("waveform: time axis is not uniformly sampled")
)
