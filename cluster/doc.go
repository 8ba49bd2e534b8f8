// Package cluster precomputes, per geometrically-distinct neighborhood
// shape, the set of low-energy spin configurations found by exhaustive
// enumeration, and uses that catalog to drive a cluster-substitution
// variant of the gibrid search: instead of perturbing one site at a time,
// it swaps an entire local neighborhood to a cached near-optimal pattern
// and lets greedy descent clean up from there.
package cluster
