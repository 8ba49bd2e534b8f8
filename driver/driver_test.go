// Package driver_test exercises the outer loop's stop conditions, the
// context hooks, and the multi-threaded replicate-to-global-best behavior.
package driver_test

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/spinlat/driver"
	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/search"
	"github.com/halvorsen/spinlat/system"
)

func randomSystem(t *testing.T, n int, seed int64) *system.System {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	sites := make([]system.Site, n)
	for i := range sites {
		sites[i] = system.Site{
			Position: system.Vec2{X: rng.Float64() * 10, Y: rng.Float64() * 10},
			Moment:   system.Vec2{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5},
		}
	}
	s, err := system.NewSystem(sites)
	require.NoError(t, err)

	return s
}

func TestRunSingleThreadedStopsOnStepBudget(t *testing.T) {
	s := randomSystem(t, 8, 1)

	// A step that never registers a new minimum: IsConverged never
	// becomes true (no minimum is ever recorded), so only the step
	// budget can end the loop.
	calls := 0
	noop := func(sys *system.System, reg registerer.Registerer) {
		calls++
	}

	cfg := driver.NewConfig(driver.WithStepBudget(25))
	driver.RunSingleThreaded(s, driver.NoneContext{}, noop, cfg)

	require.Equal(t, 25, calls)
}

func TestRunSingleThreadedConvergesOnRepeatedGreedy(t *testing.T) {
	s := randomSystem(t, 10, 2)

	step := func(sys *system.System, reg registerer.Registerer) {
		search.Greedy(sys, reg)
	}

	cfg := driver.NewConfig(driver.WithStepBudget(500), driver.WithConvergenceEps(1e-8))
	min := driver.RunSingleThreaded(s, driver.NoneContext{}, step, cfg)

	// Greedy from an already-greedy-minimal state registers nothing new,
	// so every iteration after the first is non-improving and the loop
	// ends once the step budget of non-improving iterations is spent,
	// returning the minimum from the first descent.
	require.NotNil(t, min.State)
}

func TestReplicateContextBroadcastsBestIntoSystem(t *testing.T) {
	s := randomSystem(t, 6, 3)
	reg := registerer.NewLocal()
	reg.Register(s)

	s.Flip(0)
	s.Flip(1) // diverge from the registered minimum

	ctx := driver.ReplicateContext{}
	ctx.AfterStepForSystem(s, reg)

	best, ok := reg.Current()
	require.True(t, ok)
	require.Equal(t, best.State, s.State())
}

func TestNoneContextIsNoOp(t *testing.T) {
	s := randomSystem(t, 4, 4)
	before := append([]bool(nil), s.State()...)

	ctx := driver.NoneContext{}
	ctx.AfterStep()
	ctx.AfterStepForSystem(s, registerer.NewLocal())

	require.Equal(t, before, s.State())
}

func TestCancelFlag(t *testing.T) {
	f := driver.NewCancelFlag()
	require.False(t, f.Cancelled())
	f.Cancel()
	require.True(t, f.Cancelled())
}

func TestRunMultiThreadedRespectsCancelFlag(t *testing.T) {
	s := randomSystem(t, 8, 5)
	cancel := driver.NewCancelFlag()

	var calls atomic.Int64
	step := func(sys *system.System, reg registerer.Registerer) {
		if calls.Add(1) >= 3 {
			cancel.Cancel()
		}
	}

	cfg := driver.NewConfig(driver.WithStepBudget(1000), driver.WithThreadCount(4))
	driver.RunMultiThreaded(s, driver.NoneContext{}, step, cfg, cancel)

	// Each iteration dispatches ThreadCount calls; cancellation is
	// checked only between iterations, so the run stops at the first
	// iteration boundary at or after the 3rd call, not mid-iteration.
	require.True(t, cancel.Cancelled())
	require.GreaterOrEqual(t, calls.Load(), int64(3))
}

// TestReplicateDriverReachesGlobalMinimumMostOfTheTime runs the
// multi-threaded driver with ReplicateContext on a small system where the
// true global minimum is known by brute force, and checks that it is
// found in at least 19 of 20 trials (matching the module's ">=0.95 over
// 20 trials" reliability target for the replicate strategy).
func TestReplicateDriverReachesGlobalMinimumMostOfTheTime(t *testing.T) {
	const n = 8
	const trials = 20
	s := randomSystem(t, n, 77)

	bruteForceMin := func(sys *system.System) float64 {
		best := sys.Energy()
		saved := append([]bool(nil), sys.State()...)
		for mask := 0; mask < 1<<uint(n); mask++ {
			state := make([]bool, n)
			for i := 0; i < n; i++ {
				state[i] = mask&(1<<uint(i)) != 0
			}
			require.NoError(t, sys.SetState(state))
			if e := sys.Energy(); e < best {
				best = e
			}
		}
		require.NoError(t, sys.SetState(saved))

		return best
	}
	globalMin := bruteForceMin(s)

	hits := 0
	for trial := 0; trial < trials; trial++ {
		step := func(sys *system.System, reg registerer.Registerer) {
			search.Gibrid(sys, reg, int64(trial)+1)
		}
		cfg := driver.NewConfig(driver.WithStepBudget(40), driver.WithThreadCount(4))
		min := driver.RunMultiThreaded(s, driver.ReplicateContext{}, step, cfg, nil)
		if min.Energy <= globalMin+1e-6 {
			hits++
		}
	}

	require.GreaterOrEqual(t, hits, 19, "expected replicate driver to find the global minimum in at least 19/%d trials, got %d", trials, hits)
}
