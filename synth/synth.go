package synth

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-ringdown/qnm"
	"github.com/cwbudde/algo-ringdown/waveform"
)

// Synthesize evaluates terms on the time axis t for every mode with
// ellMin ≤ ℓ ≤ ellMax. The background must hold one remnant or one per sample.
func Synthesize(o qnm.Oracle, bg Background, terms []Term, t []float64, ellMin, ellMax int, opts ...Option) (*waveform.Modes, error) {
	cfg := applyOptions(opts...)

	if err := bg.validate(len(t)); err != nil {
		return nil, err
	}
	if cfg.dest != nil {
		if want := len(t) * waveform.NumModes(ellMin, ellMax); len(cfg.dest) != want {
			return nil, fmt.Errorf("%w: dest has %d values, want %d", waveform.ErrShapeMismatch, len(cfg.dest), want)
		}
	}

	label := cfg.label
	if label == "" {
		label = fmt.Sprintf("qnm_modes(%d terms, t_ref=%g)", len(terms), cfg.tRef)
	}

	fill := func(ax []float64, lm []waveform.LM) ([]complex128, error) {
		s := synthesizer{oracle: o, bg: bg, cfg: cfg, t: ax, lm: lm}

		// Every lookup is resolved before the output is touched, so a
		// failing term leaves a caller-supplied buffer unchanged.
		plans := make([]plan, len(terms))
		for k, term := range terms {
			p, err := s.prepare(term)
			if err != nil {
				return nil, fmt.Errorf("synth: term %d: %w", k, err)
			}
			plans[k] = p
		}

		s.data = cfg.dest
		if s.data == nil {
			s.data = make([]complex128, len(ax)*len(lm))
		} else {
			clear(s.data)
		}
		for _, p := range plans {
			s.render(p)
		}
		return s.data, nil
	}

	return waveform.Construct(label, fill, t, ellMin, ellMax)
}

// SynthesizeAs is [Synthesize] on the time axis and ℓ range of like.
func SynthesizeAs(o qnm.Oracle, bg Background, terms []Term, like *waveform.Modes, opts ...Option) (*waveform.Modes, error) {
	return Synthesize(o, bg, terms, like.T, like.EllMin, like.EllMax, opts...)
}

type synthesizer struct {
	oracle qnm.Oracle
	bg     Background
	cfg    config
	t      []float64
	lm     []waveform.LM
	data   []complex128
}

// plan is a term with its oracle lookups resolved.
type plan struct {
	a complex128

	// QNM terms: the label's m and the resolved mode, either a single entry
	// for a constant background or one per sample.
	m     int
	modes []qnm.Mode

	// Other terms: the output column and frequency. col is -1 for QNM terms.
	col   int
	omega complex128
}

func (s *synthesizer) prepare(term Term) (plan, error) {
	switch term := term.(type) {
	case QNM:
		return s.prepareQNM(term)
	case *QNM:
		if term == nil {
			return plan{}, fmt.Errorf("%w: nil term", ErrInvalidArgument)
		}
		return s.prepareQNM(*term)
	case Other:
		return s.prepareOther(term)
	case *Other:
		if term == nil {
			return plan{}, fmt.Errorf("%w: nil term", ErrInvalidArgument)
		}
		return s.prepareOther(*term)
	default:
		return plan{}, fmt.Errorf("%w: term type %T not recognized", ErrInvalidArgument, term)
	}
}

func (s *synthesizer) prepareQNM(term QNM) (plan, error) {
	p := plan{a: term.A, m: term.Mode.M, col: -1}

	if r, ok := s.bg.Constant(); ok {
		mode, err := qnm.Lookup(s.oracle, term.Mode, r.Spin, r.Mass, s.cfg.spinWeight)
		if err != nil {
			return plan{}, err
		}
		p.modes = []qnm.Mode{mode}
		return p, nil
	}

	p.modes = make([]qnm.Mode, len(s.t))
	for i := range s.t {
		r := s.bg.at(i)
		mode, err := qnm.Lookup(s.oracle, term.Mode, r.Spin, r.Mass, s.cfg.spinWeight)
		if err != nil {
			return plan{}, fmt.Errorf("sample %d: %w", i, err)
		}
		p.modes[i] = mode
	}
	return p, nil
}

func (s *synthesizer) prepareOther(term Other) (plan, error) {
	for j, lm := range s.lm {
		if lm == term.Target {
			return plan{a: term.A, col: j, omega: term.Omega}, nil
		}
	}
	return plan{}, fmt.Errorf("%w: target mode %v outside output range", ErrInvalidArgument, term.Target)
}

func (s *synthesizer) expiwt(omega complex128, t float64) complex128 {
	return cmplx.Exp(complex(0, -1) * omega * complex(t-s.cfg.tRef, 0))
}

// columns returns the output columns sharing azimuthal number m and the
// matching mixing coefficient of mode; ℓ' absent from the mixing array
// yields a zero coefficient.
func (s *synthesizer) columns(m int, mode qnm.Mode) (cols []int, coefs []complex128) {
	for j, lm := range s.lm {
		if lm.M != m {
			continue
		}
		c, _ := mode.Coef(lm.Ell)
		cols = append(cols, j)
		coefs = append(coefs, c)
	}
	return cols, coefs
}

// render adds the contribution of p to the output.
func (s *synthesizer) render(p plan) {
	nm := len(s.lm)

	if p.col >= 0 {
		for i, t := range s.t {
			s.data[i*nm+p.col] += p.a * s.expiwt(p.omega, t)
		}
		return
	}

	if len(p.modes) == 1 {
		mode := p.modes[0]
		cols, coefs := s.columns(p.m, mode)
		for i, t := range s.t {
			e := p.a * s.expiwt(mode.Omega, t)
			for k, j := range cols {
				s.data[i*nm+j] += e * coefs[k]
			}
		}
		return
	}

	for i, t := range s.t {
		mode := p.modes[i]
		e := p.a * s.expiwt(mode.Omega, t)
		cols, coefs := s.columns(p.m, mode)
		for k, j := range cols {
			s.data[i*nm+j] += e * coefs[k]
		}
	}
}
