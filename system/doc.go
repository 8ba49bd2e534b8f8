// Package system implements the mutable spin lattice at the center of this
// module: a fixed set of sites (position + magnetic moment), a per-site
// binary spin, and the dipolar interaction energy of the resulting
// configuration.
//
// A System is built once from a site list (O(N²) precomputation of the
// neighbor index and the pair-energy matrix) and thereafter mutated only
// through Flip, SetSpin, SetSpins, and SetState — the four entry points
// that keep row energies, total energy, and spin excess consistent with
// the current spin vector. Flip is the hot path: O(N), no allocation.
//
// Energy convention: Energy() reports the sum of the row energies divided
// by two (each ordered pair is counted twice in the row-energy sums), which
// is the realized dipolar energy; RowEnergies() exposes the unnormalized
// per-site contributions.
package system
