// Package core provides the static inputs of a tour plan: a thread-safe
// directed travel Graph, the Coordinate map that places every node in the
// plane, and the small set types (NodeSet, GuidePath) threaded through a
// planning run.
//
// The Graph G = (V,E) keeps, for every node, an ordered sequence of
// (neighbor, weight) pairs:
//
//   - Directed by default; WithUndirected mirrors every AddEdge.
//   - Neighbor order is insertion order. Search algorithms iterate it as-is,
//     so the order in which edges were added is part of the observable
//     behavior of a plan.
//   - The weight is carried for compatibility with existing graph data; the
//     planner never consults it and recomputes real travel cost from Coords.
//   - Vertices() and Edges() are deterministic (sorted by ID, then by
//     insertion order).
//   - One sync.RWMutex guards vertices and adjacency; reads are concurrent.
//
// Coordinates:
//
//	Coords is a map from node ID to orb.Point. A node may appear in the
//	Graph without coordinates; distance computations involving it return
//	+Inf (see package heuristic), which keeps it out of any useful route.
//
// Sets:
//
//	NodeSet   – plain membership set (the forbidden set of a mission).
//	GuidePath – ordered preferred route for one segment with O(1) membership.
//
// Errors:
//
//	ErrEmptyVertexID        – vertex ID is the empty string.
//	ErrVertexNotFound       – requested vertex does not exist.
//	ErrLoopNotAllowed       – self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges are disabled.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	coords := core.Coords{"A": {0, 0}, "B": {3, 4}}
//	nbrs, _ := g.Neighbors("A") // [{B 1}]
package core
