// File: graph.go
// Role: Vertex and edge lifecycle plus read-only queries on Graph.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Neighbors() preserves insertion order.
//   - Edges() is ordered by From ascending, then by insertion order.
//
// Concurrency:
//   - Mutations take mu for writing, queries take mu for reading.
package core

import "sort"

// Undirected reports whether AddEdge mirrors edges.
func (g *Graph) Undirected() bool { return g.undirected }

// AddVertex inserts a vertex if missing. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge appends to to the adjacency sequence of from with the given weight.
// Missing endpoints are created. On an undirected graph the mirrored entry
// to→from is appended too.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Lock mu, register both endpoints.
//  3. Reject a parallel edge unless WithMultiEdges was given.
//  4. Append from→to, and to→from when undirected.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(deg(from)) for the parallel-edge scan, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// 2) Register endpoints
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Multi-edge policy; checked for both directions before mutating anything.
	if !g.allowMulti {
		if g.hasEdgeLocked(from, to) {
			return ErrMultiEdgeNotAllowed
		}
		if g.undirected && from != to && g.hasEdgeLocked(to, from) {
			return ErrMultiEdgeNotAllowed
		}
	}

	// 4) Append
	g.adjacency[from] = append(g.adjacency[from], Neighbor{ID: to, Weight: weight})
	g.edgeCount++
	if g.undirected && from != to {
		g.adjacency[to] = append(g.adjacency[to], Neighbor{ID: from, Weight: weight})
		g.edgeCount++
	}

	return nil
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, n := range g.adjacency[from] {
		if n.ID == to {
			return true
		}
	}

	return false
}

// HasEdge reports whether from→to is present.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Neighbors returns a copy of the adjacency sequence of id in insertion order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	src := g.adjacency[id]
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every directed adjacency entry, grouped by From (ascending)
// and in insertion order within a group.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	froms := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		froms = append(froms, id)
	}
	sort.Strings(froms)

	out := make([]Edge, 0, g.edgeCount)
	for _, from := range froms {
		for _, n := range g.adjacency[from] {
			out = append(out, Edge{From: from, To: n.ID, Weight: n.Weight})
		}
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of directed adjacency entries
// (an undirected AddEdge counts twice).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the graph, flags included.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{
		undirected: g.undirected,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		adjacency:  make(map[string][]Neighbor, len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for id, nbrs := range g.adjacency {
		cp := make([]Neighbor, len(nbrs))
		copy(cp, nbrs)
		c.adjacency[id] = cp
	}

	return c
}
