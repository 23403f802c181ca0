// options.go - functional options for both population strategies.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil source, nil rand,
//     nil name scheme, negative attempt cap). Strategies themselves never panic.
//   • Later options override earlier ones.

package populate

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Option customizes a strategy at construction time.
type Option func(*config)

// config aggregates every knob a strategy reads. Resolved once in newConfig.
type config struct {
	src         Source
	nameFn      NameFn
	maxAttempts int // 0 = unbounded (Rejection only)
	logger      *log.Logger
}

// newConfig applies opts over deterministic defaults, then fills in a
// time-seeded source if none was chosen.
func newConfig(opts ...Option) config {
	cfg := config{
		nameFn: DefaultName,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = newTimeSource()
	}

	return cfg
}

// WithSource injects an arbitrary randomness provider. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("populate: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	src := NewRandSource(r)
	return func(c *config) { c.src = src }
}

// WithSeed draws from a fresh deterministic source (see NewSeededSource).
// Each strategy built with the same seed replays the same draws.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = NewSeededSource(seed) }
}

// WithNameScheme sets how users are labelled. Panics on nil.
func WithNameScheme(fn NameFn) Option {
	if fn == nil {
		panic("populate: WithNameScheme(nil)")
	}
	return func(c *config) { c.nameFn = fn }
}

// WithMaxAttempts caps the number of draws the Rejection strategy may make
// before giving up with ErrPopulationUnsatisfiable. 0 means unbounded.
// Panics if k < 0. Ignored by Exhaustive.
func WithMaxAttempts(k int) Option {
	if k < 0 {
		panic("populate: WithMaxAttempts(k<0)")
	}
	return func(c *config) { c.maxAttempts = k }
}

// WithLogger receives a debug summary after each population. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
