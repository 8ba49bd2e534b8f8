// Package search implements the heuristic ground-state search algorithms
// over a *system.System: greedy descent, the gibrid hybrid
// (greedy + per-site perturbation), the cell-local MinimizeCells pass,
// Metropolis annealing, and exhaustive Gray-code enumeration over a
// cluster or the whole system. The cluster-substitution gibrid lives in
// the cluster package.
//
// Every algorithm here is a pure function of (system, registerer[, rng])
// plus whatever configuration it needs: it mutates the system in place
// and calls registerer.Register at every point a candidate configuration
// is reached. None of them perform I/O or logging — the hot loop stays
// total, per the module's error-handling design.
package search
