// File: catalog.go
// Role: the two-pass enumerate-then-filter catalog build: for every
// distinct neighborhood shape, run a full exhaustive enumeration once to
// find its global minimum energy, then a second pass collecting every
// configuration within 40% of that minimum.
package cluster

import (
	"math"

	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/search"
	"github.com/halvorsen/spinlat/system"
)

// nearMinimumFraction is the fraction of |E*| within which a
// configuration is retained: |E - E*| <= nearMinimumFraction * |E*|.
const nearMinimumFraction = 0.4

// Catalog maps neighborhood shapes to their cached low-energy
// configurations, and each site to the shape of its own neighborhood.
type Catalog struct {
	patterns map[string][]registerer.Minimum
	shapeOf  []string
}

// BuildCatalog computes, for every site i in sys, the canonical shape of
// NeighborIndices(i, radius) and, for every distinct shape encountered,
// the set of configurations within 40% of that shape's minimum energy
// (found by exhaustively enumerating a standalone system built from the
// shape). workers partitions each enumeration across that many
// goroutines; see search.EnumerateAll.
//
// Complexity: O(D) distinct shapes, each enumerated twice (once for the
// minimum, once to collect near-minimum configurations), O(D * 2^k)
// where k is the typical neighborhood size — expensive, intended to run
// once per lattice before a batch of gibrid-with-clusters searches.
func BuildCatalog(sys *system.System, radius float64, workers int) *Catalog {
	n := sys.Size()
	c := &Catalog{
		patterns: make(map[string][]registerer.Minimum),
		shapeOf:  make([]string, n),
	}

	for i := 0; i < n; i++ {
		cluster := sys.NeighborIndices(i, radius)
		shape := canonicalShape(sys, cluster)
		key := shape.Key()
		c.shapeOf[i] = key

		if _, cached := c.patterns[key]; cached {
			continue
		}
		c.patterns[key] = enumerateShape(shape, workers)
	}

	return c
}

// enumerateShape builds a standalone system from shape, finds its global
// minimum energy by full enumeration, and collects every configuration
// within nearMinimumFraction of that minimum's magnitude.
func enumerateShape(shape Shape, workers int) []registerer.Minimum {
	sub, err := system.NewSystem(shape.Sites)
	if err != nil {
		return nil
	}

	reg := registerer.NewLocal()
	best := search.EnumerateAll(sub, reg, workers)

	all := make([]int, sub.Size())
	for j := range all {
		all[j] = j
	}
	tol := nearMinimumFraction * math.Abs(best.Energy)

	return search.EnumerateClusterNear(sub, all, workers, best.Energy, tol)
}

// ShapeFor returns the canonical-shape key computed for site i during
// BuildCatalog.
func (c *Catalog) ShapeFor(i int) string {
	return c.shapeOf[i]
}

// Patterns returns the cached low-energy configurations for a shape key,
// or nil if the key is unknown.
func (c *Catalog) Patterns(key string) []registerer.Minimum {
	return c.patterns[key]
}

// ShapeCount returns the number of distinct canonical shapes cached.
func (c *Catalog) ShapeCount() int {
	return len(c.patterns)
}
