package spatial

import (
	"errors"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/tourplan/core"
)

// Tolerance is the half side of the box stored for each node.
const Tolerance = 1e-9

// ErrBadK is returned when a nearest query asks for fewer than one node.
var ErrBadK = errors.New("spatial: k must be positive")

// entry wraps one node for R-tree storage.
type entry struct {
	id    string
	point orb.Point
	box   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.box }

// Index answers spatial queries over node coordinates.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex builds an index over every node in coords.
func NewIndex(coords core.Coords) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for _, id := range coords.IDs() {
		p := coords[id]
		tree.Insert(&entry{
			id:    id,
			point: p,
			box:   rtreego.Point{p[0], p[1]}.ToRect(Tolerance),
		})
	}

	return &Index{tree: tree, size: len(coords)}
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.size }

// Nearest returns up to k node IDs closest to pt.
func (ix *Index) Nearest(pt orb.Point, k int) ([]string, error) {
	if k < 1 {
		return nil, ErrBadK
	}
	if k > ix.size {
		k = ix.size
	}
	if k == 0 {
		return nil, nil
	}

	// The R-tree fixes the radius; the window query then gathers every node
	// tied at that radius so the cut at k is made by ID.
	radius := 0.0
	for _, s := range ix.tree.NearestNeighbors(k, rtreego.Point{pt[0], pt[1]}) {
		if e, ok := s.(*entry); ok && e != nil {
			radius = math.Max(radius, planar.Distance(pt, e.point))
		}
	}
	pad := radius + Tolerance
	rect, err := rtreego.NewRectFromPoints(
		rtreego.Point{pt[0] - pad, pt[1] - pad},
		rtreego.Point{pt[0] + pad, pt[1] + pad},
	)
	if err != nil {
		return nil, err
	}
	var hits []*entry
	for _, s := range ix.tree.SearchIntersect(rect) {
		if e, ok := s.(*entry); ok && planar.Distance(pt, e.point) <= radius+Tolerance {
			hits = append(hits, e)
		}
	}
	out := sortByDistance(hits, pt)
	if len(out) > k {
		out = out[:k]
	}

	return out, nil
}

// Within returns the IDs of nodes inside b, boundary included.
func (ix *Index) Within(b orb.Bound) []string {
	rect, err := rtreego.NewRectFromPoints(
		rtreego.Point{b.Min[0] - Tolerance, b.Min[1] - Tolerance},
		rtreego.Point{b.Max[0] + Tolerance, b.Max[1] + Tolerance},
	)
	if err != nil {
		return nil
	}

	found := ix.tree.SearchIntersect(rect)
	out := make([]string, 0, len(found))
	for _, s := range found {
		e, ok := s.(*entry)
		if !ok || !b.Contains(e.point) {
			continue
		}
		out = append(out, e.id)
	}
	sort.Strings(out)

	return out
}

// Coincident groups nodes that lie within eps of one another's point.
// Only groups with two or more members are returned, each sorted, and the
// groups are ordered by their first ID.
func (ix *Index) Coincident(coords core.Coords, eps float64) [][]string {
	seen := core.NewNodeSet()
	var groups [][]string
	for _, id := range coords.IDs() {
		if seen.Has(id) {
			continue
		}
		p := coords[id]
		near := ix.Within(orb.Bound{
			Min: orb.Point{p[0] - eps, p[1] - eps},
			Max: orb.Point{p[0] + eps, p[1] + eps},
		})
		var group []string
		for _, other := range near {
			if seen.Has(other) || planar.Distance(p, coords[other]) > eps {
				continue
			}
			group = append(group, other)
		}
		if len(group) < 2 {
			continue
		}
		seen.Add(group...)
		groups = append(groups, group)
	}

	return groups
}

// sortByDistance orders hits by exact distance to pt, then by ID.
func sortByDistance(hits []*entry, pt orb.Point) []string {
	sort.Slice(hits, func(i, j int) bool {
		di, dj := planar.Distance(pt, hits[i].point), planar.Distance(pt, hits[j].point)
		if di != dj {
			return di < dj
		}

		return hits[i].id < hits[j].id
	})

	out := make([]string, len(hits))
	for i, e := range hits {
		out[i] = e.id
	}

	return out
}
