package mismatch

import "errors"

var (
	// ErrEmptyWindow reports a window holding fewer than two samples.
	ErrEmptyWindow = errors.New("mismatch: window holds fewer than two samples")
	// ErrZeroEnergy reports a waveform with no power inside the window.
	ErrZeroEnergy = errors.New("mismatch: waveform has zero energy in window")
)
