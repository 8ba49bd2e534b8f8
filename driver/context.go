// File: context.go
// Role: the per-iteration hook interface, and the two required
// implementations.
package driver

import (
	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// Context runs between driver iterations. AfterStep is called once per
// outer iteration regardless of thread count; AfterStepForSystem is
// called once per system replica (once, for the single replica, in
// RunSingleThreaded; once per worker in RunMultiThreaded).
type Context interface {
	AfterStep()
	AfterStepForSystem(sys *system.System, reg registerer.Registerer)
}

// NoneContext is a Context whose hooks are both no-ops.
type NoneContext struct{}

// AfterStep implements Context.
func (NoneContext) AfterStep() {}

// AfterStepForSystem implements Context.
func (NoneContext) AfterStepForSystem(*system.System, registerer.Registerer) {}

// ReplicateContext is a Context that, after every step, overwrites each
// system's state with the registerer's current best (if any exists yet),
// so every worker's next iteration restarts from the global minimum
// instead of drifting from its own local trajectory.
type ReplicateContext struct{}

// AfterStep implements Context.
func (ReplicateContext) AfterStep() {}

// AfterStepForSystem implements Context.
func (ReplicateContext) AfterStepForSystem(sys *system.System, reg registerer.Registerer) {
	best, ok := reg.Current()
	if !ok {
		return
	}
	_ = sys.SetState(best.State)
}
