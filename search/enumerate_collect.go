// File: enumerate_collect.go
// Role: a second enumeration pass used by the cluster catalog (§4.5): once
// the global minimum energy of a small cluster-shape system is known, this
// collects every configuration within tolerance of it. Kept separate from
// EnumerateCluster/EnumerateAll because the near-minimum threshold is only
// known once a full sweep has already produced the minimum.
package search

import (
	"sync"

	"github.com/halvorsen/spinlat/bitseq"
	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// EnumerateClusterNear re-enumerates all 2^len(cluster) assignments and
// returns every visited (state, energy) pair whose energy is within tol of
// target, in no particular order.
func EnumerateClusterNear(sys *system.System, cluster []int, workers int, target, tol float64) []registerer.Minimum {
	if len(cluster) == 0 {
		return nil
	}

	total := uint64(1) << uint(len(cluster))
	ranges := partitionStates(total, workers)

	perWorker := make([][]registerer.Minimum, len(ranges))
	var wg sync.WaitGroup
	for w, r := range ranges {
		if r.count == 0 {
			continue
		}
		wg.Add(1)
		go func(w int, r workRange) {
			defer wg.Done()
			perWorker[w] = collectRange(sys, cluster, r, target, tol)
		}(w, r)
	}
	wg.Wait()

	var out []registerer.Minimum
	for _, batch := range perWorker {
		out = append(out, batch...)
	}

	return out
}

func collectRange(sys *system.System, cluster []int, r workRange, target, tol float64) []registerer.Minimum {
	clone := sys.Clone()
	var found []registerer.Minimum

	saveIfNear := func() {
		e := clone.Energy()
		d := e - target
		if d < 0 {
			d = -d
		}
		if d <= tol {
			state := make([]bool, len(clone.State()))
			copy(state, clone.State())
			found = append(found, registerer.Minimum{Energy: e, State: state})
		}
	}

	applyGrayStart(clone, cluster, r.start)
	saveIfNear()

	for i := r.start + 1; i < r.start+r.count; i++ {
		bit := bitseq.FlippedBit(i)
		clone.Flip(cluster[bit])
		saveIfNear()
	}

	return found
}
