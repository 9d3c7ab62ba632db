// Command qnmfit synthesizes a quasinormal-mode ringdown, optionally adds
// deterministic noise, and fits the mode amplitudes back by linear least
// squares.
//
// Usage:
//
//	qnmfit [flags] [l,m,n,sign=re,im ...]
//
// Without arguments it fits the (2,2,0,+1) mode with amplitude 1e-2.
//
// Examples:
//
//	qnmfit
//	qnmfit -spin 0.69 -mass 0.95 2,2,0,1=1,0 2,2,1,1=2,-1 3,3,0,1=0,0.1
//	qnmfit -oracle table -noise 1e-4 -select "2,2;3,3" 2,2,0,1=1 3,3,0,1=0.1
package main

import (
	"flag"
	"fmt"
	"io"
	"math/cmplx"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-ringdown/fit"
	"github.com/cwbudde/algo-ringdown/qnm"
	"github.com/cwbudde/algo-ringdown/synth"
	"github.com/cwbudde/algo-ringdown/waveform"
	"go.uber.org/zap"
)

type options struct {
	spin    float64
	mass    float64
	t0      float64
	dt      float64
	samples int
	ellMax  int
	tRef    float64
	t1      float64
	t2      float64
	rcond   float64
	noise   float64
	seed    int64
	oracle  string
	sel     string
	verbose bool
}

func main() {
	var opt options
	flag.Float64Var(&opt.spin, "spin", 0.7, "dimensionless remnant spin, 0 <= spin < 1")
	flag.Float64Var(&opt.mass, "mass", 1.0, "remnant mass")
	flag.Float64Var(&opt.t0, "t0", 0, "first sample time")
	flag.Float64Var(&opt.dt, "dt", 0.1, "sample interval")
	flag.IntVar(&opt.samples, "n", 1000, "number of samples")
	flag.IntVar(&opt.ellMax, "ellmax", 4, "largest ell of the waveform")
	flag.Float64Var(&opt.tRef, "tref", 0, "time at which amplitudes are specified")
	flag.Float64Var(&opt.t1, "t1", 0, "start of the mismatch window")
	flag.Float64Var(&opt.t2, "t2", 100, "end of the mismatch window")
	flag.Float64Var(&opt.rcond, "rcond", -1, "relative singular-value cutoff of the solve (negative: machine precision)")
	flag.Float64Var(&opt.noise, "noise", 0, "amplitude of uniform complex noise added to every mode")
	flag.Int64Var(&opt.seed, "seed", 1, "noise seed")
	flag.StringVar(&opt.oracle, "oracle", "fits", "mode oracle: fits or table")
	flag.StringVar(&opt.sel, "select", "", `modes to fit and score, e.g. "2,2;3,3" (default all)`)
	flag.BoolVar(&opt.verbose, "v", false, "log per-group solver diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qnmfit [flags] [l,m,n,sign=re,im ...]\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes a QNM ringdown and fits the amplitudes back.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  qnmfit\n")
		fmt.Fprintf(os.Stderr, "  qnmfit -spin 0.69 2,2,0,1=1,0 2,2,1,1=2,-1 3,3,0,1=0,0.1\n")
		fmt.Fprintf(os.Stderr, "  qnmfit -oracle table -noise 1e-4 -select \"2,2;3,3\" 2,2,0,1=1 3,3,0,1=0.1\n")
	}
	flag.Parse()

	logger := newLogger(opt.verbose)
	defer func() { _ = logger.Sync() }()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"2,2,0,1=1e-2,0"}
	}

	if err := run(os.Stdout, opt, args, logger); err != nil {
		logger.Error("qnmfit failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(out io.Writer, opt options, args []string, logger *zap.Logger) error {
	truth := make([]synth.QNM, len(args))
	for i, a := range args {
		term, err := parseTerm(a)
		if err != nil {
			return err
		}
		truth[i] = term
	}

	sel, err := parseSelection(opt.sel)
	if err != nil {
		return err
	}

	oracle, err := buildOracle(opt.oracle)
	if err != nil {
		return err
	}

	t := make([]float64, opt.samples)
	for i := range t {
		t[i] = opt.t0 + opt.dt*float64(i)
	}

	terms := make([]synth.Term, len(truth))
	unset := make([]synth.Term, len(truth))
	for i, q := range truth {
		terms[i] = q
		unset[i] = q.WithAmplitude(0)
	}

	h, err := synth.Synthesize(oracle, synth.Fixed(opt.spin, opt.mass), terms, t, 2, opt.ellMax,
		synth.WithRefTime(opt.tRef), synth.WithLabel("target"))
	if err != nil {
		return err
	}
	if opt.noise > 0 {
		addNoise(h, opt.noise, opt.seed)
	}

	logger.Debug("target synthesized",
		zap.Int("samples", h.Len()),
		zap.Int("modes", h.NumModes()),
		zap.String("oracle", opt.oracle),
	)

	res, err := fit.LLSQ(oracle, h, sel, fit.Window{T1: opt.t1, T2: opt.t2}, opt.spin, opt.mass, unset,
		fit.WithRefTime(opt.tRef), fit.WithRcond(opt.rcond), fit.WithLogger(logger))
	if err != nil {
		return err
	}

	return printResult(out, oracle, opt, truth, res)
}

func buildOracle(name string) (qnm.Oracle, error) {
	switch name {
	case "fits":
		return qnm.Fits{}, nil
	case "table":
		fits := qnm.Fits{}
		return qnm.Tabulate(fits, qnm.SpinGrid{Start: 0, Step: 0.01, N: 99}, fits.Keys()...)
	default:
		return nil, fmt.Errorf("unknown oracle %q (want fits or table)", name)
	}
}

func addNoise(h *waveform.Modes, amplitude float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range h.Data {
		h.Data[i] += complex((rng.Float64()*2-1)*amplitude, (rng.Float64()*2-1)*amplitude)
	}
}

func printResult(out io.Writer, oracle qnm.Oracle, opt options, truth []synth.QNM, res fit.Result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Mode\tomega\tTrue A\tFitted A\t|dA|\tPeak omega\n")
	fmt.Fprintf(tw, "----\t-----\t------\t--------\t----\t----------\n")

	for i, q := range res.Terms {
		mode, err := qnm.Lookup(oracle, q.Mode, opt.spin, opt.mass, qnm.SpinWeight)
		if err != nil {
			return err
		}

		peak := "-"
		lm := waveform.LM{Ell: q.Mode.Ell, M: q.Mode.M}
		if w, err := res.Target.PeakFrequency(lm); err == nil {
			peak = fmt.Sprintf("%.4f", w)
		}

		fmt.Fprintf(tw, "%v\t%.4f\t%.4g\t%.4g\t%.2e\t%s\n",
			q.Mode,
			mode.Omega,
			truth[i].A,
			q.A,
			cmplx.Abs(q.A-truth[i].A),
			peak,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nerror    %.3e\nmismatch %.3e\n", res.Error, res.Mismatch)
	return err
}
