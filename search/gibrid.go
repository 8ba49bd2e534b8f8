// File: gibrid.go
// Role: the hybrid greedy/perturbation algorithm: descend to a local
// minimum, then for each site in a random order try flipping it and
// accepting the perturbation only if some other site now "wants" to flip
// more than the perturbed one did. The cluster-substitution variant
// (gibrid driven by a precomputed catalog of low-energy neighborhood
// patterns) lives in the cluster package, since it depends on the
// catalog type.
package search

import (
	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// Gibrid runs greedy descent, then visits every site in a random order: it
// flips the site, finds the site with the minimum row energy, and if that
// site is not the one just flipped, registers both intermediate states,
// flips the minimum-row-energy site too, and redescends with Greedy. If
// the minimum-row-energy site is the one just flipped, the perturbation
// had no downhill successor and is undone.
//
// seed selects the random order in which sites are visited; seed == 0 uses
// a fixed default stream.
func Gibrid(sys *system.System, reg registerer.Registerer, seed int64) {
	Greedy(sys, reg)

	rng := rngFromSeed(seed)
	for _, i := range shuffledIndices(sys.Size(), rng) {
		sys.Flip(i)

		j := argminRowEnergy(sys.RowEnergies())
		if j == i {
			sys.Flip(i) // no better candidate than undoing; reject the perturbation
			continue
		}

		reg.Register(sys)
		sys.Flip(j)
		reg.Register(sys)

		Greedy(sys, reg)
	}
}

// argminRowEnergy returns the index of the minimum row energy, first
// occurrence on ties.
func argminRowEnergy(rowEnergies []float64) int {
	idx := 0
	min := rowEnergies[0]
	for i, e := range rowEnergies {
		if e < min {
			idx, min = i, e
		}
	}

	return idx
}
