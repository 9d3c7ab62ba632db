package synth

import (
	"github.com/cwbudde/algo-ringdown/qnm"
	"github.com/cwbudde/algo-ringdown/waveform"
)

// Term is one component of a synthesized waveform. It is implemented by
// [QNM] and [Other] only.
type Term interface {
	// Amplitude returns the complex amplitude at the reference time.
	Amplitude() complex128
	isTerm()
}

// QNM is a quasinormal-mode term. Target optionally records the spherical
// mode the term is associated with; synthesis spreads the term over all
// modes of the same m regardless.
type QNM struct {
	Mode   qnm.Label
	A      complex128
	Target *waveform.LM
}

// Amplitude implements [Term].
func (q QNM) Amplitude() complex128 { return q.A }

// WithAmplitude returns a copy of q with amplitude a.
func (q QNM) WithAmplitude(a complex128) QNM {
	q.A = a
	return q
}

func (QNM) isTerm() {}

// Other is a damped sinusoid of explicit complex frequency Omega placed in a
// single spherical mode.
type Other struct {
	Omega  complex128
	A      complex128
	Target waveform.LM
}

// Amplitude implements [Term].
func (o Other) Amplitude() complex128 { return o.A }

func (Other) isTerm() {}
