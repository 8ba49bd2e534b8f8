// Package spinlat searches for low-energy spin configurations of a
// 2-D dipole-coupled lattice.
//
// A System (package system) holds a fixed set of sites — positions and
// magnetic moments — plus a mutable up/down spin state, with O(N)
// incremental energy bookkeeping on single-site flips. A Registerer
// (package registerer) tracks the best configuration seen so far,
// either for a single search thread or shared across several. The
// search package implements the descent/perturbation/enumeration
// algorithms that drive a System toward a low-energy state; cluster
// adds a neighborhood-shape cache so a search can substitute whole
// cached local patterns instead of single-site moves. driver runs any
// of those algorithms to a step budget or convergence, single- or
// multi-threaded, and siteio loads and saves lattices in the project's
// text and CSV formats.
//
//	go get github.com/halvorsen/spinlat
package spinlat
