// Package registerer implements the best-state monitor shared by every
// search algorithm and the driver: it records the lowest-energy
// configuration observed so far, the one before it, and reports whether
// the search has converged (the two most recent minima agree within an
// epsilon).
//
// Two implementations share the Registerer interface:
//
//   - Local: no synchronization, for single-threaded search.
//   - Shared: guarded by a sync.Mutex, for the multi-threaded driver,
//     where the lock is held only for the O(1) compare-and-replace.
package registerer
