// File: shape.go
// Role: canonical-shape computation — the cache key that lets two
// geometrically identical neighborhoods (same relative positions and
// moments, different absolute location) share one catalog entry.
package cluster

import (
	"fmt"
	"math"
	"strings"

	"github.com/halvorsen/spinlat/system"
)

// Shape is a neighborhood translated so its minimum x and y are both 0,
// in the same order as the NeighborIndices call that produced it.
type Shape struct {
	Sites []system.Site
}

// Key returns a deterministic string uniquely identifying Shape's ordered
// (position, moment) sequence: two shapes with equal Key are
// interchangeable for enumeration purposes.
func (s Shape) Key() string {
	var b strings.Builder
	for _, site := range s.Sites {
		fmt.Fprintf(&b, "%.9f,%.9f,%.9f,%.9f|", site.Position.X, site.Position.Y, site.Moment.X, site.Moment.Y)
	}

	return b.String()
}

// canonicalShape translates the sites named by cluster (indices into sys)
// so their minimum x and minimum y are both 0, preserving cluster's
// order.
func canonicalShape(sys *system.System, cluster []int) Shape {
	sites := sys.Sites()
	minX, minY := math.Inf(1), math.Inf(1)
	for _, idx := range cluster {
		p := sites[idx].Position
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}

	translated := make([]system.Site, len(cluster))
	for k, idx := range cluster {
		s := sites[idx]
		translated[k] = system.Site{
			Position: system.Vec2{X: s.Position.X - minX, Y: s.Position.Y - minY},
			Moment:   s.Moment,
		}
	}

	return Shape{Sites: translated}
}
