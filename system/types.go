// File: types.go
// Role: core data types, sentinel errors, and the dipolar pair-energy
// formula for the spin lattice.
package system

import (
	"errors"
	"math"
)

// Sentinel errors for system construction and mutation.
var (
	// ErrEmptySites indicates NewSystem was called with zero sites.
	ErrEmptySites = errors.New("system: no sites provided")

	// ErrIndexOutOfRange indicates a site index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("system: site index out of range")

	// ErrStateLengthMismatch indicates SetState received a state vector of
	// the wrong length.
	ErrStateLengthMismatch = errors.New("system: state length mismatch")
)

// Vec2 is a plain 2-D vector used for site positions and magnetic moments.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Site is an immutable lattice site: a fixed position and the magnetic
// moment realized when the site's spin is "up".
type Site struct {
	Position Vec2
	Moment   Vec2
}

// pairEnergy computes the dipolar interaction energy of two sites assuming
// both spins are "up":
//
//	E(i,j) = (mi·mj)/|r|^3 - 3*(mi·r)(mj·r)/|r|^5,  r = pos(i) - pos(j)
//
// Coincident sites (|r| = 0) and any other NaN result are defined as 0.
func pairEnergy(a, b Site) float64 {
	r := a.Position.Sub(b.Position)
	rl := r.Length()
	r3 := rl * rl * rl
	r5 := r3 * rl * rl

	e := a.Moment.Dot(b.Moment)/r3 - 3*(a.Moment.Dot(r)*b.Moment.Dot(r))/r5
	if math.IsNaN(e) {
		return 0
	}

	return e
}

// neighborEntry is one row of a System's neighbor index: the partner site
// index and its distance from the row's owner, sorted ascending by
// distance at construction time.
type neighborEntry struct {
	index    int
	distance float64
}

// System is a mutable spin configuration over a fixed set of sites.
//
// Invariants (hold after every exported mutation):
//
//	sign[i] == +1 iff spin[i] == false
//	rowEnergy[i] == sum_j pairEnergy[i][j] * sign[i] * sign[j]
//	totalEnergy  == sum_i rowEnergy[i]
//	spinExcess   == sum_i sign[i]
//	neighbors[i] sorted ascending by distance, neighbors[i][0] == (i, 0)
type System struct {
	sites     []Site
	neighbors [][]neighborEntry

	spin []bool  // spin[i]: false = up, true = down
	sign []int8  // sign[i]: +1 or -1, kept in sync with spin[i]

	pairEnergy [][]float64 // pairEnergy[i][j], symmetric, zero diagonal
	rowEnergy  []float64

	totalEnergy float64
	spinExcess  int32
}
