package fit

import (
	"fmt"

	"github.com/cwbudde/algo-ringdown/measure/mismatch"
	"github.com/cwbudde/algo-ringdown/qnm"
	"github.com/cwbudde/algo-ringdown/synth"
	"github.com/cwbudde/algo-ringdown/waveform"
	"go.uber.org/zap"
)

// minFitEll is the lowest ℓ fitted; ℓ < 2 carries no gravitational radiation.
const minFitEll = 2

// Window is the time interval (T1, T2] used to score a fit.
type Window struct {
	T1 float64
	T2 float64
}

// Result holds the outcome of [LLSQ].
type Result struct {
	// Model is the QNM waveform built from the fitted amplitudes, on the
	// target's time axis and ℓ range.
	Model *waveform.Modes
	// Target is the waveform that was fitted.
	Target *waveform.Modes
	// Error is 0.5·∫‖target − model‖² dt / ∫‖target‖² dt over the selected modes.
	Error float64
	// Mismatch between target and model over the selected modes and window.
	Mismatch float64
	// Terms are copies of the input terms carrying the fitted amplitudes.
	Terms []synth.QNM
}

// Amplitudes returns the fitted amplitudes in term order.
func (r Result) Amplitudes() []complex128 {
	out := make([]complex128, len(r.Terms))
	for i, t := range r.Terms {
		out[i] = t.A
	}
	return out
}

type group struct {
	m       int
	members []int
}

// LLSQ fits the complex amplitudes of terms to target for a remnant of the
// given spin and mass. Input amplitudes are ignored and terms is not modified.
//
// Terms are grouped by azimuthal number m and each group is solved
// independently against the target modes (ℓ, m), ℓ ≥ 2, that sel admits. A
// group whose m is absent from an explicit selection is fitted against every
// ℓ of that m instead. The whole target time axis enters the solve; win only
// bounds the mismatch.
func LLSQ(o qnm.Oracle, target *waveform.Modes, sel waveform.ModeSelection, win Window,
	spin, mass float64, terms []synth.Term, opts ...Option,
) (Result, error) {
	cfg := applyOptions(opts...)
	log := cfg.logger

	fitted, err := qnmTerms(terms)
	if err != nil {
		return Result{}, err
	}

	bg := synth.Fixed(spin, mass)
	for _, g := range groupByM(fitted) {
		rows := fitRows(target, sel, g.m)
		if len(rows) == 0 && !sel.IsAll() {
			log.Warn("m-group absent from mode selection, fitting all ells",
				zap.Int("m", g.m))
			rows = fitRows(target, waveform.AllModes(), g.m)
		}
		if len(rows) == 0 {
			return Result{}, fmt.Errorf("%w: m=%d with ell range [%d, %d]", ErrNoRows, g.m, target.EllMin, target.EllMax)
		}

		amps, rank, err := solveGroup(o, bg, target, rows, fitted, g, cfg)
		if err != nil {
			return Result{}, fmt.Errorf("fit: m=%d: %w", g.m, err)
		}
		for k, idx := range g.members {
			fitted[idx].A = amps[k]
		}

		log.Debug("solved m-group",
			zap.Int("m", g.m),
			zap.Int("terms", len(g.members)),
			zap.Int("rows", len(rows)*target.Len()),
			zap.Int("rank", rank),
		)
	}

	model, err := synth.SynthesizeAs(o, bg, asTerms(fitted), target, synth.WithRefTime(cfg.tRef))
	if err != nil {
		return Result{}, fmt.Errorf("fit: model: %w", err)
	}

	errNorm, err := residualError(target, model, sel)
	if err != nil {
		return Result{}, err
	}

	mm, err := mismatch.Mismatch(target, model, sel, win.T1, win.T2)
	if err != nil {
		return Result{}, fmt.Errorf("fit: %w", err)
	}

	log.Info("ringdown fit",
		zap.Int("terms", len(fitted)),
		zap.Float64("error", errNorm),
		zap.Float64("mismatch", mm),
	)

	return Result{
		Model:    model,
		Target:   target,
		Error:    errNorm,
		Mismatch: mm,
		Terms:    fitted,
	}, nil
}

func qnmTerms(terms []synth.Term) ([]synth.QNM, error) {
	out := make([]synth.QNM, len(terms))
	for i, t := range terms {
		switch t := t.(type) {
		case synth.QNM:
			out[i] = t
		case *synth.QNM:
			if t == nil {
				return nil, fmt.Errorf("%w: term %d is nil", ErrUnsupportedTerm, i)
			}
			out[i] = *t
		default:
			return nil, fmt.Errorf("%w: term %d is %T", ErrUnsupportedTerm, i, t)
		}
	}
	return out, nil
}

func asTerms(q []synth.QNM) []synth.Term {
	out := make([]synth.Term, len(q))
	for i, t := range q {
		out[i] = t
	}
	return out
}

// groupByM partitions term indices by m in order of first appearance.
func groupByM(terms []synth.QNM) []group {
	var groups []group
	pos := make(map[int]int)
	for i, t := range terms {
		k, ok := pos[t.Mode.M]
		if !ok {
			k = len(groups)
			pos[t.Mode.M] = k
			groups = append(groups, group{m: t.Mode.M})
		}
		groups[k].members = append(groups[k].members, i)
	}
	return groups
}

// fitRows returns the target columns (ℓ, m), ℓ ≥ 2, admitted by sel.
func fitRows(target *waveform.Modes, sel waveform.ModeSelection, m int) []int {
	var rows []int
	for l := max(minFitEll, target.EllMin); l <= target.EllMax; l++ {
		lm := waveform.LM{Ell: l, M: m}
		if !target.Has(lm) || !sel.Contains(lm) {
			continue
		}
		rows = append(rows, waveform.LMIndex(l, m, target.EllMin))
	}
	return rows
}

func solveGroup(o qnm.Oracle, bg synth.Background, target *waveform.Modes, rows []int,
	terms []synth.QNM, g group, cfg config,
) ([]complex128, int, error) {
	n := target.Len()
	nr := len(rows)
	sys := newSystem(n*nr, len(g.members))

	for i := range n {
		for r, j := range rows {
			sys.b[i*nr+r] = target.At(i, j)
		}
	}

	for k, idx := range g.members {
		unit := terms[idx].WithAmplitude(1)
		h, err := synth.SynthesizeAs(o, bg, []synth.Term{unit}, target, synth.WithRefTime(cfg.tRef))
		if err != nil {
			return nil, 0, err
		}
		for i := range n {
			for r, j := range rows {
				sys.set(i*nr+r, k, h.At(i, j))
			}
		}
	}

	return sys.solve(cfg.rcond)
}

// residualError returns 0.5·∫‖target − model‖² / ∫‖target‖² with the
// residual restricted to the selected modes.
func residualError(target, model *waveform.Modes, sel waveform.ModeSelection) (float64, error) {
	diff, err := waveform.Zeros(target.T, target.EllMin, target.EllMax)
	if err != nil {
		return 0, err
	}
	for _, lm := range sel.Pairs(target.EllMin, target.EllMax) {
		if sel.IsAll() && lm.Ell < minFitEll {
			continue
		}
		j := waveform.LMIndex(lm.Ell, lm.M, target.EllMin)
		col := target.Column(j)
		mod := model.Column(j)
		for i := range col {
			col[i] -= mod[i]
		}
		diff.SetColumn(j, col)
	}

	norm := mismatch.Energy(target)
	if norm == 0 {
		return 0, fmt.Errorf("fit: %w", mismatch.ErrZeroEnergy)
	}
	return 0.5 * mismatch.Energy(diff) / norm, nil
}
