// File: enumerate.go
// Role: exhaustive Gray-code enumeration over a cluster (or the whole
// system, when the cluster is every index). Work is partitioned across
// goroutines; each worker owns a private system clone and advances
// through its range with a single Flip per step, registering every
// candidate it visits against the shared registerer. Results are merged
// by taking the minimum across workers.
package search

import (
	"sync"

	"github.com/halvorsen/spinlat/bitseq"
	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// workRange is a half-open [start, start+count) slice of the 2^k state
// space assigned to one enumeration worker.
type workRange struct {
	start uint64
	count uint64
}

// partitionStates splits [0, total) into `workers` near-equal contiguous
// ranges, distributing the remainder one-per-worker starting from worker 0.
func partitionStates(total uint64, workers int) []workRange {
	if workers < 1 {
		workers = 1
	}
	block := total / uint64(workers)
	remain := total % uint64(workers)

	ranges := make([]workRange, workers)
	for w := 0; w < workers; w++ {
		extra := uint64(0)
		if uint64(w) < remain {
			extra = 1
		}
		minW := remain
		if uint64(w) < remain {
			minW = uint64(w)
		}
		start := uint64(w)*block + minW
		count := block + extra
		ranges[w] = workRange{start: start, count: count}
	}

	return ranges
}

// EnumerateCluster enumerates all 2^len(cluster) assignments to the sites
// in cluster, holding every other spin fixed at its current value, and
// returns the lowest-energy configuration found. Every visited
// configuration is registered against reg. An empty cluster leaves the
// system unchanged, registers its current configuration, and returns it.
//
// workers partitions [0, 2^k) across that many goroutines; workers < 1 is
// treated as 1.
func EnumerateCluster(sys *system.System, reg registerer.Registerer, cluster []int, workers int) registerer.Minimum {
	if len(cluster) == 0 {
		reg.Register(sys)
		state := make([]bool, len(sys.State()))
		copy(state, sys.State())

		return registerer.Minimum{Energy: sys.Energy(), State: state}
	}

	total := uint64(1) << uint(len(cluster))
	ranges := partitionStates(total, workers)

	results := make([]registerer.Minimum, len(ranges))
	var wg sync.WaitGroup
	for w, r := range ranges {
		if r.count == 0 {
			continue
		}
		wg.Add(1)
		go func(w int, r workRange) {
			defer wg.Done()
			results[w] = enumerateRange(sys, reg, cluster, r)
		}(w, r)
	}
	wg.Wait()

	return minimumOf(results)
}

// EnumerateAll enumerates every configuration of the whole system; it is
// EnumerateCluster with cluster == every index.
func EnumerateAll(sys *system.System, reg registerer.Registerer, workers int) registerer.Minimum {
	all := make([]int, sys.Size())
	for i := range all {
		all[i] = i
	}

	return EnumerateCluster(sys, reg, all, workers)
}

// enumerateRange runs one worker's slice of the Gray-code sweep on a
// private clone of sys, registering every visited state both against the
// worker-local registerer (to find its own minimum) and the shared reg.
func enumerateRange(sys *system.System, reg registerer.Registerer, cluster []int, r workRange) registerer.Minimum {
	clone := sys.Clone()
	local := registerer.NewLocal()

	applyGrayStart(clone, cluster, r.start)
	local.Register(clone)
	reg.Register(clone)

	for i := r.start + 1; i < r.start+r.count; i++ {
		bit := bitseq.FlippedBit(i)
		clone.Flip(cluster[bit])
		local.Register(clone)
		reg.Register(clone)
	}

	min, _ := local.Current()

	return min
}

// applyGrayStart sets the cluster bits of sys to the Gray code of start.
// It builds a Vector keyed by logical position (0..len(cluster)-1) via
// VectorFromGray, then maps each position back to its system index.
func applyGrayStart(sys *system.System, cluster []int, start uint64) {
	positions := identityIndices(len(cluster))
	v := bitseq.NewVector(len(cluster))
	bitseq.VectorFromGray(&v, positions, start)

	for j, idx := range cluster {
		sys.SetSpin(idx, v.Get(j))
	}
}

// identityIndices returns [0, 1, ..., n-1].
func identityIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// minimumOf returns the entry with the lowest Energy; zero-value entries
// (unset results, e.g. from a zero-count range) are skipped.
func minimumOf(results []registerer.Minimum) registerer.Minimum {
	var best registerer.Minimum
	found := false
	for _, m := range results {
		if m.State == nil {
			continue
		}
		if !found || m.Energy < best.Energy {
			best, found = m, true
		}
	}

	return best
}
