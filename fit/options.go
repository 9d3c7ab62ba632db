package fit

import "go.uber.org/zap"

type config struct {
	tRef   float64
	rcond  float64
	logger *zap.Logger
}

// Option configures [LLSQ].
type Option func(*config)

func defaultConfig() config {
	return config{
		rcond:  -1,
		logger: zap.NewNop(),
	}
}

// WithRefTime sets the time at which fitted amplitudes are specified.
func WithRefTime(tRef float64) Option {
	return func(cfg *config) {
		cfg.tRef = tRef
	}
}

// WithRcond sets the relative singular-value cutoff of the solve. Singular
// values below rcond times the largest are treated as zero. A negative value
// selects machine epsilon times the larger matrix dimension.
func WithRcond(rcond float64) Option {
	return func(cfg *config) {
		cfg.rcond = rcond
	}
}

// WithLogger sets the logger receiving per-group diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
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
