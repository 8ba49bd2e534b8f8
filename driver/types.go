// File: types.go
// Role: driver configuration via the default functional-options pattern:
// a Config struct, an Option func(*Config), and a DefaultConfig plus
// NewConfig(opts...) pair.
package driver

import (
	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// StepFunc is one unit of search work: it mutates sys and registers any
// candidate configurations it reaches against reg. Every algorithm in
// the search and cluster packages has this shape already, modulo the
// extra parameters baked in via a closure at the call site.
type StepFunc func(sys *system.System, reg registerer.Registerer)

// Option configures a Config. Use with DefaultConfig() and apply in
// order: later options override earlier ones.
type Option func(*Config)

// Config holds the parameters governing the outer stop condition.
type Config struct {
	// StepBudget is the number of consecutive non-improving iterations
	// tolerated before the driver gives up and returns the best state
	// found so far.
	StepBudget int

	// ConvergenceEps is the epsilon passed to Registerer.IsConverged: the
	// driver also stops once the current and previous minima are within
	// this distance of each other.
	ConvergenceEps float64

	// ThreadCount is the number of system replicas RunMultiThreaded
	// spawns per iteration. Unused by RunSingleThreaded.
	ThreadCount int
}

// DefaultConfig returns a Config with a step budget of 1000, the
// reference convergence epsilon of 1e-8, and a single thread.
func DefaultConfig() Config {
	return Config{
		StepBudget:     1000,
		ConvergenceEps: 1e-8,
		ThreadCount:    1,
	}
}

// WithStepBudget sets the number of non-improving iterations tolerated
// before the driver stops.
func WithStepBudget(budget int) Option {
	return func(c *Config) {
		c.StepBudget = budget
	}
}

// WithConvergenceEps sets the epsilon used to detect convergence between
// successive minima.
func WithConvergenceEps(eps float64) Option {
	return func(c *Config) {
		c.ConvergenceEps = eps
	}
}

// WithThreadCount sets the number of worker replicas for
// RunMultiThreaded.
func WithThreadCount(n int) Option {
	return func(c *Config) {
		c.ThreadCount = n
	}
}

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
