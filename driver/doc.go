// Package driver runs a user-supplied search step to convergence, either
// on a single system or replicated across a fixed number of worker
// goroutines that share one registerer. It owns the outer stop condition
// (convergence or step-budget exhaustion) and the per-iteration hooks
// that let a caller broadcast the shared best state back into every
// worker between steps.
package driver
