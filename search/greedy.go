// File: greedy.go
// Role: monotone greedy descent — the seed step of gibrid and of cluster
// substitution.
package search

import (
	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// Greedy repeatedly flips the site with the maximum positive row energy
// and registers the result, stopping once every row energy is <= 0 (a
// local minimum). Each flip strictly decreases the total energy, so
// Greedy terminates in at most N² flips on any input.
func Greedy(sys *system.System, reg registerer.Registerer) {
	for {
		idx, found := maxPositiveRowEnergy(sys.RowEnergies())
		if !found {
			return
		}
		sys.Flip(idx)
		reg.Register(sys)
	}
}

// maxPositiveRowEnergy returns the index of the first row energy attaining
// the maximum value among strictly positive entries, and whether any such
// entry exists.
func maxPositiveRowEnergy(rowEnergies []float64) (int, bool) {
	idx := -1
	var max float64
	for i, e := range rowEnergies {
		if e > 0 && (idx == -1 || e > max) {
			idx, max = i, e
		}
	}

	return idx, idx != -1
}
