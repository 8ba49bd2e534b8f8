// File: gibrid.go
// Role: gibrid-with-cluster-substitution — the catalog-driven companion
// to search.Gibrid. Instead of perturbing one site, it swaps a whole
// local neighborhood to a cached near-optimal pattern and redescends.
package cluster

import (
	"math/rand"

	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/search"
	"github.com/halvorsen/spinlat/system"
)

// defaultSeed mirrors search.rngFromSeed's convention: seed == 0 maps to
// a fixed default stream so callers get reproducible runs by default.
const defaultSeed int64 = 1

// GibridWithClusters runs N steps (N = sys.Size()) of: pick a random
// center, look up its neighborhood shape in catalog, and if the shape has
// any cached low-energy pattern, apply one chosen uniformly at random and
// run greedy descent from there. Centers whose shape has no cached
// pattern are skipped; catalog must have been built with the same radius
// passed here, or ShapeFor's keys will not correspond to cluster's
// geometry.
func GibridWithClusters(sys *system.System, reg registerer.Registerer, catalog *Catalog, radius float64, seed int64) {
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	n := sys.Size()
	for step := 0; step < n; step++ {
		center := rng.Intn(n)
		indices := sys.NeighborIndices(center, radius)

		patterns := catalog.Patterns(catalog.ShapeFor(center))
		if len(patterns) == 0 {
			continue
		}

		pattern := patterns[rng.Intn(len(patterns))]
		for k, idx := range indices {
			sys.SetSpin(idx, pattern.State[k])
		}

		reg.Register(sys)
		search.Greedy(sys, reg)
	}
}
