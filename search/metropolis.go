// File: metropolis.go
// Role: the Metropolis Monte Carlo sweep. Kept separate from gibrid.go
// because it is the one algorithm in this package that can accept an
// energy-increasing move, and because its acceptance test is reproduced
// literally from the reference rather than "corrected" (see below).
package search

import (
	"math"
	"math/rand"

	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// Metropolis runs steps single-site trial flips at fixed temperature T.
// Each step: register the current state, pick a uniformly random site,
// flip it, register the result, and accept unconditionally if the new
// energy is no greater than the old one. Otherwise draw u ~ Uniform[0,1)
// and reject (flip back) iff exp((e2-e1)/T) < u.
//
// NOTE: this acceptance test is carried over unchanged from the reference
// it was distilled from. Standard Metropolis accepts an uphill move with
// probability exp(-(e2-e1)/T) and rejects otherwise; here the sign inside
// the exponential is flipped and the comparison direction is inverted,
// so for T > 0 exp((e2-e1)/T) >= 1 > u and an uphill move is never
// rejected; only T == 0 rejects uphill moves. This is very likely an inherited
// bug, not an intentional design choice, but it is reproduced faithfully
// rather than silently "fixed" since nothing in this package can
// establish which behavior callers actually depend on.
func Metropolis(sys *system.System, reg registerer.Registerer, steps int, temperature float64, seed int64) {
	rng := rngFromSeed(seed)
	n := sys.Size()
	if n == 0 {
		return
	}

	for step := 0; step < steps; step++ {
		reg.Register(sys)

		i := rng.Intn(n)
		e1 := sys.Energy()
		sys.Flip(i)
		reg.Register(sys)
		e2 := sys.Energy()

		if e2 >= e1 {
			if rejectUphill(rng, e1, e2, temperature) {
				sys.Flip(i)
			}
		}
	}
}

// rejectUphill reports whether an uphill move (e2 >= e1) should be
// rejected: true iff exp((e2-e1)/T) < u for u drawn uniformly from
// [0, 1). For T > 0 that exponential is at least 1, so the result is
// always false. T == 0 is handled separately (the formula would divide by
// zero): it rejects iff e2 > e1, so an equal-energy move is kept.
func rejectUphill(rng *rand.Rand, e1, e2, temperature float64) bool {
	if temperature == 0 {
		return e2 > e1
	}

	p := math.Exp((e2 - e1) / temperature)
	u := rng.Float64()

	return p < u
}

// TemperatureSchedule returns a geometric sequence of length steps+1 from
// start to end inclusive, where each step multiplies by a fixed ratio
// (end/start)^(1/steps). steps must be >= 1.
func TemperatureSchedule(start, end float64, steps int) []float64 {
	out := make([]float64, steps+1)
	out[0] = start
	if steps == 0 {
		return out
	}

	ratio := math.Pow(end/start, 1/float64(steps))
	t := start
	for i := 1; i <= steps; i++ {
		t *= ratio
		out[i] = t
	}

	return out
}
