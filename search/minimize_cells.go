// File: minimize_cells.go
// Role: the cell-local polishing pass over the realized energy matrix
// (sign[i]*sign[j]*pairEnergy[i][j]). Best-effort: it does not guarantee a
// local optimum, only a best-of pass over the largest-magnitude buckets.
package search

import (
	"math"
	"sort"

	"github.com/halvorsen/spinlat/registerer"
	"github.com/halvorsen/spinlat/system"
)

// minimizeCellsBuckets is the number of largest-magnitude buckets
// processed: a top-5 cutoff.
const minimizeCellsBuckets = 5

// cellPos is a coordinate into the realized energy matrix.
type cellPos struct{ x, y int }

// MinimizeCells rounds the realized energy matrix to 10 decimal places,
// buckets the non-zero cells by absolute value, and processes the five
// largest-magnitude buckets in randomized cell order, trying local
// single- or paired-flip improvements. See Branch A/B below; the branch
// split and the "constrained" check reproduce the reference heuristic
// literally, including its undocumented intent.
func MinimizeCells(sys *system.System, reg registerer.Registerer, seed int64) {
	n := sys.Size()
	rounded := make([][]float64, n)
	buckets := make(map[float64][]cellPos)

	for y := 0; y < n; y++ {
		rounded[y] = make([]float64, n)
		for x := 0; x < n; x++ {
			e := round10(sys.RealizedEnergy(y, x))
			rounded[y][x] = e
			if e == 0 {
				continue
			}
			key := math.Abs(e)
			buckets[key] = append(buckets[key], cellPos{x: x, y: y})
		}
	}

	keys := make([]float64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(keys)))

	rng := rngFromSeed(seed)
	limit := minimizeCellsBuckets
	if limit > len(keys) {
		limit = len(keys)
	}

	for keyIdx := 0; keyIdx < limit; keyIdx++ {
		greaterKeys := keys[:keyIdx]
		cells := append([]cellPos(nil), buckets[keys[keyIdx]]...)
		rng.Shuffle(len(cells), func(a, b int) { cells[a], cells[b] = cells[b], cells[a] })

		for _, c := range cells {
			x, y := c.x, c.y
			constrained := rowHasAny(rounded[y], greaterKeys)

			if sys.RealizedEnergy(y, x) > 0 && !constrained {
				tryUnconstrainedPair(sys, reg, x, y)
			} else {
				tryConstrainedPair(sys, reg, x, y)
			}
		}
	}
}

// round10 rounds x to 10 decimal places, matching the reference's
// (x * 1e10).round() / 1e10 bucketing.
func round10(x float64) float64 {
	const scale = 1e10

	return math.Round(x*scale) / scale
}

// rowHasAny reports whether row contains any entry whose absolute value
// appears in keys.
func rowHasAny(row []float64, keys []float64) bool {
	for _, v := range row {
		av := math.Abs(v)
		for _, k := range keys {
			if av == k {
				return true
			}
		}
	}

	return false
}

// tryUnconstrainedPair implements Branch A: compare flipping x alone vs.
// flipping y alone, applying whichever improves on the current energy.
func tryUnconstrainedPair(sys *system.System, reg registerer.Registerer, x, y int) {
	oldE := sys.Energy()

	sys.Flip(x)
	e1 := sys.Energy()
	sys.Flip(x)

	sys.Flip(y)
	e2 := sys.Energy()
	sys.Flip(y)

	if oldE <= e1 && oldE <= e2 {
		return
	}

	if e1 < e2 {
		sys.Flip(x)
	} else {
		sys.Flip(y)
	}
	reg.Register(sys)
}

// tryConstrainedPair implements Branch B: try flipping both x and y
// together, keeping the change only if it strictly improves energy.
func tryConstrainedPair(sys *system.System, reg registerer.Registerer, x, y int) {
	before := sys.Energy()

	sys.Flip(x)
	sys.Flip(y)

	if sys.Energy() >= before {
		sys.Flip(x)
		sys.Flip(y)

		return
	}

	reg.Register(sys)
}
