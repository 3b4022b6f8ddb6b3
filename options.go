package kmeans

import (
	"math"
	"math/rand"
)

const (
	// DefaultMaxIterations caps the number of Lloyd iterations.
	DefaultMaxIterations = 2500
)

// DefaultTolerance is the movement below which the kernels count as converged:
// the machine epsilon of float64 (2^-52).
var DefaultTolerance = math.Nextafter(1, 2) - 1

type options struct {
	maxIterations    int
	tolerance        float64
	initializer      Initializer
	rand             *rand.Rand
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		maxIterations:    DefaultMaxIterations,
		tolerance:        DefaultTolerance,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.initializer == nil {
		o.initializer = &RandomInitializer{Rand: o.rand}
	}
	return o
}

// Option configures a clustering run.
type Option func(*options)

// WithMaxIterations sets the hard iteration cap.
//
// Non-positive values keep DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithTolerance sets the total movement below which the run stops.
//
// Negative or NaN values keep DefaultTolerance. A tolerance of 0 only stops on
// the iteration cap.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol >= 0 {
			o.tolerance = tol
		}
	}
}

// WithInitializer sets the kernel initialization strategy.
//
// If nil is passed, random sampling is used.
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		o.initializer = init
	}
}

// WithQuantileSeeding selects QuantileInitializer.
func WithQuantileSeeding() Option {
	return WithInitializer(QuantileInitializer{})
}

// WithRand sets the random source used by the default RandomInitializer.
//
// Without it the source is seeded from the wall clock. Ignored when an explicit
// initializer is configured.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
