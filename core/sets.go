package core

import "sort"

// NodeSet is a mutable membership set of node IDs.
// The zero value is not usable; build one with NewNodeSet.
type NodeSet map[string]struct{}

// NewNodeSet returns a set holding ids.
func NewNodeSet(ids ...string) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add inserts every id into the set.
func (s NodeSet) Add(ids ...string) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Has reports membership. A nil set contains nothing.
func (s NodeSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of members.
func (s NodeSet) Len() int { return len(s) }

// Sorted returns the members sorted ascending.
func (s NodeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Clone returns an independent copy.
func (s NodeSet) Clone() NodeSet {
	c := make(NodeSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}

	return c
}

// GuidePath is the preferred route hint for one segment.
// It keeps the original order for display and a set for membership tests.
// The zero value is an empty guide path.
type GuidePath struct {
	nodes []string
	set   NodeSet
}

// NewGuidePath builds a guide path from an ordered node list.
func NewGuidePath(nodes ...string) GuidePath {
	cp := make([]string, len(nodes))
	copy(cp, nodes)

	return GuidePath{nodes: cp, set: NewNodeSet(nodes...)}
}

// Empty reports whether the guide path has no nodes.
func (p GuidePath) Empty() bool { return len(p.nodes) == 0 }

// Len returns the number of entries, duplicates included.
func (p GuidePath) Len() int { return len(p.nodes) }

// Contains reports whether id is on the guide path.
func (p GuidePath) Contains(id string) bool { return p.set.Has(id) }

// Nodes returns a copy of the ordered node list.
func (p GuidePath) Nodes() []string {
	out := make([]string, len(p.nodes))
	copy(out, p.nodes)

	return out
}
