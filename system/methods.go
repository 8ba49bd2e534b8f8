// File: methods.go
// Role: the spin-mutation primitives. Flip is the single point of truth
// for incremental energy bookkeeping; SetState is the full-recompute
// escape hatch. No other path may touch the spin vector.
package system

// Sign returns the ±1 sign of site i's current spin: +1 if up, -1 if down.
func (s *System) Sign(i int) int8 {
	return s.sign[i]
}

// RealizedEnergy returns the signed pair energy sign[i]*sign[j]*pairEnergy[i][j]
// for the current configuration.
func (s *System) RealizedEnergy(i, j int) float64 {
	return float64(s.sign[i]) * float64(s.sign[j]) * s.pairEnergy[i][j]
}

// Flip toggles the spin at site i and incrementally updates row energies,
// total energy, and spin excess. This is the hot path: O(N), no
// allocation. i must satisfy 0 <= i < Size().
func (s *System) Flip(i int) {
	s.spin[i] = !s.spin[i]
	newSign := -s.sign[i]
	s.sign[i] = newSign

	if s.spin[i] {
		s.spinExcess -= 2
	} else {
		s.spinExcess += 2
	}

	row := s.pairEnergy[i]
	n := len(s.sites)
	for j := 0; j < n; j++ {
		if j == i {
			continue // pairEnergy[i][i] == 0, contributes nothing
		}
		delta := row[j] * 2 * float64(newSign) * float64(s.sign[j])
		s.rowEnergy[j] += delta
		s.rowEnergy[i] += delta
		s.totalEnergy += 2 * delta
	}
}

// SetSpin sets site i's spin to down (true) or up (false), flipping it only
// if the requested state differs from the current one.
func (s *System) SetSpin(i int, down bool) {
	if s.spin[i] != down {
		s.Flip(i)
	}
}

// SetSpins applies SetSpin for every index in the sequence.
func (s *System) SetSpins(states map[int]bool) {
	for i, down := range states {
		s.SetSpin(i, down)
	}
}

// SetState replaces the spin vector wholesale and recomputes row energies,
// total energy, and spin excess from scratch: O(N²). Intended for bulk
// resets (e.g. loading a saved configuration or applying an enumerated
// candidate); Flip remains the only O(N) primitive.
func (s *System) SetState(state []bool) error {
	if len(state) != len(s.spin) {
		return ErrStateLengthMismatch
	}

	copy(s.spin, state)
	n := len(s.sites)
	for i := 0; i < n; i++ {
		if s.spin[i] {
			s.sign[i] = -1
		} else {
			s.sign[i] = 1
		}
	}

	s.totalEnergy = 0
	var excess int32
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += s.RealizedEnergy(i, j)
		}
		s.rowEnergy[i] = sum
		s.totalEnergy += sum
		excess += int32(s.sign[i])
	}
	s.spinExcess = excess

	return nil
}
