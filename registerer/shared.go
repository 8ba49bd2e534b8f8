// File: shared.go
// Role: the mutex-guarded Registerer used by the multi-threaded driver.
// The lock is held only for the O(1) compare-and-replace described in the
// module's concurrency model — never across a search step.
package registerer

import (
	"sync"

	"github.com/halvorsen/spinlat/system"
)

// Shared is a Registerer safe for concurrent use by multiple driver
// workers. Internally it delegates to a Local under a sync.Mutex.
type Shared struct {
	mu    sync.Mutex
	inner Local
}

// NewShared returns an empty Shared registerer.
func NewShared() *Shared {
	return &Shared{}
}

// Register implements Registerer.
func (r *Shared) Register(sys *system.System) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inner.Register(sys)
}

// Current implements Registerer.
func (r *Shared) Current() (Minimum, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.inner.Current()
}

// Previous implements Registerer.
func (r *Shared) Previous() (Minimum, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.inner.Previous()
}

// IsConverged implements Registerer.
func (r *Shared) IsConverged(eps float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.inner.IsConverged(eps)
}

// TakeChanged implements Registerer.
func (r *Shared) TakeChanged() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.inner.TakeChanged()
}
