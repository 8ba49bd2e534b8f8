// File: types.go
// Role: the Registerer interface and the Minimum snapshot type shared by
// both implementations.
package registerer

import "github.com/halvorsen/spinlat/system"

// Minimum is a snapshot of a configuration registered at some point in the
// search: its energy and a copy of the spin state at that moment.
type Minimum struct {
	Energy float64
	State  []bool
}

// Registerer accumulates the best configuration seen by one or more search
// algorithms and reports convergence. Register is called at every point a
// search algorithm reaches a candidate configuration; it is a no-op unless
// the candidate strictly improves on the current minimum.
type Registerer interface {
	// Register compares sys's current energy against the recorded minimum
	// and, on strict improvement, shifts the previous minimum down, records
	// a fresh snapshot, and marks changed.
	Register(sys *system.System)

	// Current returns the current minimum and whether one has been
	// recorded yet.
	Current() (Minimum, bool)

	// Previous returns the previous minimum and whether one has been
	// recorded yet.
	Previous() (Minimum, bool)

	// IsConverged reports whether both Current and Previous are present
	// and their energies differ by less than eps.
	IsConverged(eps float64) bool

	// TakeChanged atomically reads and clears the changed flag.
	TakeChanged() bool
}

// snapshot copies sys's state into a Minimum.
func snapshot(sys *system.System) Minimum {
	state := make([]bool, len(sys.State()))
	copy(state, sys.State())

	return Minimum{Energy: sys.Energy(), State: state}
}
