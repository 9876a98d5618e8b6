package core

import (
	"sort"

	"github.com/paulmach/orb"
)

// Coords maps a node ID to its planar position.
// It is read-only for the duration of a planning run.
type Coords map[string]orb.Point

// Lookup returns the position of id and whether it is known.
func (c Coords) Lookup(id string) (orb.Point, bool) {
	p, ok := c[id]

	return p, ok
}

// IDs returns every node ID with a position, sorted ascending.
func (c Coords) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Bound returns the axis-aligned bounding box of all positions.
// An empty Coords yields the zero Bound.
func (c Coords) Bound() orb.Bound {
	if len(c) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, 0, len(c))
	for _, id := range c.IDs() {
		mp = append(mp, c[id])
	}

	return mp.Bound()
}

// Missing returns the IDs from ids that have no position, in input order
// and without duplicates.
func (c Coords) Missing(ids []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, id := range ids {
		if _, ok := c[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
