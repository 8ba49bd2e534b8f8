// File: api.go
// Role: construction and read-only queries over System.
package system

import "sort"

// NewSystem builds a System from sites. Construction is O(N²): every
// pairwise distance and pair energy is computed once, the neighbor index
// is sorted per row, and the initial configuration is all-spins-up.
func NewSystem(sites []Site) (*System, error) {
	if len(sites) == 0 {
		return nil, ErrEmptySites
	}

	n := len(sites)
	s := &System{
		sites:      make([]Site, n),
		neighbors:  make([][]neighborEntry, n),
		spin:       make([]bool, n),
		sign:       make([]int8, n),
		pairEnergy: make([][]float64, n),
		rowEnergy:  make([]float64, n),
	}
	copy(s.sites, sites)

	for i := 0; i < n; i++ {
		row := make([]neighborEntry, n)
		energies := make([]float64, n)
		var rowSum float64
		for j := 0; j < n; j++ {
			d := s.sites[i].Position.Sub(s.sites[j].Position).Length()
			row[j] = neighborEntry{index: j, distance: d}
			if i == j {
				energies[j] = 0
			} else {
				energies[j] = pairEnergy(s.sites[i], s.sites[j])
			}
			rowSum += energies[j]
		}
		// Stable: ties at equal distance keep ascending-index order, so
		// geometrically identical neighborhoods (e.g. interior sites of a
		// raster-scanned lattice) produce identically-ordered neighbor
		// lists and therefore the same canonical shape (see the cluster
		// package).
		sort.SliceStable(row, func(a, b int) bool { return row[a].distance < row[b].distance })

		s.neighbors[i] = row
		s.pairEnergy[i] = energies
		s.rowEnergy[i] = rowSum
		s.sign[i] = 1
	}

	for i := 0; i < n; i++ {
		s.totalEnergy += s.rowEnergy[i]
	}
	s.spinExcess = int32(n)

	return s, nil
}

// Size returns the number of sites, N.
func (s *System) Size() int {
	return len(s.sites)
}

// Energy returns the realized dipolar energy of the current configuration,
// total/2 (each ordered pair is counted twice in the row-energy sums).
func (s *System) Energy() float64 {
	return s.totalEnergy / 2
}

// RowEnergies returns the current per-site row energies. The slice is
// owned by System; callers must not mutate it.
func (s *System) RowEnergies() []float64 {
	return s.rowEnergy
}

// SpinExcess returns #(spin=up) - #(spin=down) as a signed count.
func (s *System) SpinExcess() int32 {
	return s.spinExcess
}

// State returns the current spin vector: state[i] == true means site i is
// down. The returned slice is owned by System; callers must not mutate it.
func (s *System) State() []bool {
	return s.spin
}

// Sites returns the immutable site list.
func (s *System) Sites() []Site {
	return s.sites
}

// MaxRadius returns the largest distance present in any neighbor list.
// Complexity: O(N).
func (s *System) MaxRadius() float64 {
	var max float64
	for i := range s.neighbors {
		row := s.neighbors[i]
		if len(row) == 0 {
			continue
		}
		if d := row[len(row)-1].distance; d > max {
			max = d
		}
	}

	return max
}

// NeighborsWithin calls fn(j, distance) for every neighbor of site i with
// distance <= radius, in ascending distance order, stopping at the first
// entry that exceeds radius (no sorted entries beyond it are visited).
func (s *System) NeighborsWithin(i int, radius float64, fn func(j int, distance float64)) {
	for _, e := range s.neighbors[i] {
		if e.distance > radius {
			return
		}
		fn(e.index, e.distance)
	}
}

// NeighborIndices returns the site indices within radius of i, center
// included, ordered by ascending distance.
func (s *System) NeighborIndices(i int, radius float64) []int {
	out := make([]int, 0, 8)
	s.NeighborsWithin(i, radius, func(j int, _ float64) {
		out = append(out, j)
	})

	return out
}

// Clone returns an independent deep copy of s: a separate System safe to
// mutate from another goroutine while the original is used elsewhere.
// Complexity: O(N²), dominated by the pair-energy matrix copy.
func (s *System) Clone() *System {
	n := len(s.sites)
	c := &System{
		sites:       make([]Site, n),
		neighbors:   make([][]neighborEntry, n),
		spin:        make([]bool, n),
		sign:        make([]int8, n),
		pairEnergy:  make([][]float64, n),
		rowEnergy:   make([]float64, n),
		totalEnergy: s.totalEnergy,
		spinExcess:  s.spinExcess,
	}
	copy(c.sites, s.sites)
	copy(c.spin, s.spin)
	copy(c.sign, s.sign)
	copy(c.rowEnergy, s.rowEnergy)
	for i := 0; i < n; i++ {
		c.neighbors[i] = make([]neighborEntry, len(s.neighbors[i]))
		copy(c.neighbors[i], s.neighbors[i])
		c.pairEnergy[i] = make([]float64, n)
		copy(c.pairEnergy[i], s.pairEnergy[i])
	}

	return c
}
