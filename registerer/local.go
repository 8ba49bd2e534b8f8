// File: local.go
// Role: the single-owner Registerer, used by single-threaded search where
// no cross-goroutine synchronization is needed.
package registerer

import "github.com/halvorsen/spinlat/system"

// Local is a Registerer with no internal synchronization. It must not be
// shared across goroutines without external locking.
type Local struct {
	current  *Minimum
	previous *Minimum
	changed  bool
}

// NewLocal returns an empty Local registerer.
func NewLocal() *Local {
	return &Local{}
}

// Register implements Registerer.
func (r *Local) Register(sys *system.System) {
	e := sys.Energy()
	if r.current != nil && r.current.Energy <= e {
		return
	}

	snap := snapshot(sys)
	r.previous = r.current
	r.current = &snap
	r.changed = true
}

// Current implements Registerer.
func (r *Local) Current() (Minimum, bool) {
	if r.current == nil {
		return Minimum{}, false
	}

	return *r.current, true
}

// Previous implements Registerer.
func (r *Local) Previous() (Minimum, bool) {
	if r.previous == nil {
		return Minimum{}, false
	}

	return *r.previous, true
}

// IsConverged implements Registerer.
func (r *Local) IsConverged(eps float64) bool {
	if r.current == nil || r.previous == nil {
		return false
	}

	d := r.current.Energy - r.previous.Energy
	if d < 0 {
		d = -d
	}

	return d < eps
}

// TakeChanged implements Registerer.
func (r *Local) TakeChanged() bool {
	changed := r.changed
	r.changed = false

	return changed
}
