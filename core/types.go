package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Neighbor is one entry of a node's adjacency sequence.
type Neighbor struct {
	// ID is the destination node.
	ID string

	// Weight is the nominal edge weight from the source data.
	// It is retained for compatibility and is not used to compute travel cost.
	Weight float64
}

// Edge is a flattened view of one adjacency entry, used for enumeration.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes AddEdge insert the mirrored edge to→from as well.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an in-memory travel graph with ordered adjacency.
//
// mu guards vertices, adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	undirected bool // mirror every AddEdge
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	vertices  map[string]struct{}   // vertex ID → presence
	adjacency map[string][]Neighbor // vertex ID → neighbors in insertion order
	edgeCount int                   // number of directed adjacency entries
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is directed, loop-free and rejects parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
