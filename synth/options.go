package synth

import "github.com/cwbudde/algo-ringdown/qnm"

type config struct {
	tRef       float64
	spinWeight int
	dest       []complex128
	label      string
}

// Option configures [Synthesize].
type Option func(*config)

func defaultConfig() config {
	return config{spinWeight: qnm.SpinWeight}
}

// WithRefTime sets the time at which term amplitudes are specified.
func WithRefTime(tRef float64) Option {
	return func(cfg *config) {
		cfg.tRef = tRef
	}
}

// WithSpinWeight overrides the spin weight passed to the oracle (default -2).
func WithSpinWeight(s int) Option {
	return func(cfg *config) {
		cfg.spinWeight = s
	}
}

// WithDest makes the synthesized waveform use buf as its data storage.
// buf must hold exactly samples × modes values; it is zeroed before use.
func WithDest(buf []complex128) Option {
	return func(cfg *config) {
		cfg.dest = buf
	}
}

// WithLabel sets the label of the returned waveform.
func WithLabel(label string) Option {
	return func(cfg *config) {
		cfg.label = label
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
