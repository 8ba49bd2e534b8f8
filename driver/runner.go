// File: runner.go
// Role: the single-threaded and multi-threaded outer loops. Both share
// the same stop condition (convergence or step-budget exhaustion) and
// hook ordering (AfterStep, then AfterStepForSystem per replica); they
// differ only in how many system clones exist and how the step function
// is dispatched across them.
package driver

import (
	"sync"

	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// RunSingleThreaded repeatedly invokes step against sys and a private
// Local registerer until the registerer reports convergence at
// cfg.ConvergenceEps or cfg.StepBudget consecutive iterations pass
// without improvement, running ctx's hooks after every iteration.
// Returns the best configuration found.
func RunSingleThreaded(sys *system.System, ctx Context, step StepFunc, cfg Config) registerer.Minimum {
	reg := registerer.NewLocal()
	stepsSinceImprovement := 0

	for !reg.IsConverged(cfg.ConvergenceEps) && stepsSinceImprovement < cfg.StepBudget {
		step(sys, reg)

		ctx.AfterStep()
		ctx.AfterStepForSystem(sys, reg)

		if reg.TakeChanged() {
			stepsSinceImprovement = 0
		} else {
			stepsSinceImprovement++
		}
	}

	min, _ := reg.Current()

	return min
}

// RunMultiThreaded clones sys into threadCount independent replicas and
// runs step on each, once per iteration, in its own goroutine, sharing a
// single Shared registerer across all of them. It stops when the
// registerer converges at cfg.ConvergenceEps, cancel reports cancelled,
// or cfg.StepBudget consecutive iterations pass without improvement.
// cancel may be nil, meaning cancellation is never requested.
//
// Between iterations there is a full barrier: ctx.AfterStep() runs once,
// then ctx.AfterStepForSystem runs once per replica, all on the calling
// goroutine, only after every worker for that iteration has returned.
func RunMultiThreaded(sys *system.System, ctx Context, step StepFunc, cfg Config, cancel *CancelFlag) registerer.Minimum {
	reg := registerer.NewShared()

	threadCount := cfg.ThreadCount
	if threadCount < 1 {
		threadCount = 1
	}
	systems := make([]*system.System, threadCount)
	for i := range systems {
		systems[i] = sys.Clone()
	}

	stepsSinceImprovement := 0

	for !reg.IsConverged(cfg.ConvergenceEps) && !cancelled(cancel) && stepsSinceImprovement < cfg.StepBudget {
		var wg sync.WaitGroup
		wg.Add(threadCount)
		for i := 0; i < threadCount; i++ {
			go func(worker *system.System) {
				defer wg.Done()
				step(worker, reg)
			}(systems[i])
		}
		wg.Wait()

		ctx.AfterStep()
		for _, worker := range systems {
			ctx.AfterStepForSystem(worker, reg)
		}

		if reg.TakeChanged() {
			stepsSinceImprovement = 0
		} else {
			stepsSinceImprovement++
		}
	}

	min, _ := reg.Current()

	return min
}

func cancelled(f *CancelFlag) bool {
	return f != nil && f.Cancelled()
}
