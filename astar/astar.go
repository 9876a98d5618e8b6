package astar

import (
	"container/heap"
	"log/slog"

	"github.com/katalvlaran/tourplan/core"
	"github.com/katalvlaran/tourplan/heuristic"
)

// Search finds a guided route from start to goal in g, using coords for
// every cost term. See the package documentation for the scoring and
// expansion rules.
//
// Returns:
//
//   - Result with Found=true and Path=[start … goal] on success.
//     start == goal yields Path=[start].
//   - Result{Found:false} with ErrNoPath when goal is unreachable under the
//     forbidden-set and no-U-turn rules.
//   - A validation error (ErrNilGraph, ErrEmptyStart, ErrEmptyGoal,
//     ErrOptionViolation), ErrExpansionLimit or ctx.Err() otherwise.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. start and goal must be non-empty (ErrEmptyStart, ErrEmptyGoal).
func Search(g *core.Graph, coords core.Coords, start, goal string, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if start == "" {
		return Result{}, ErrEmptyStart
	}
	if goal == "" {
		return Result{}, ErrEmptyGoal
	}

	// 3) Initialize runner and run main loop.
	r := &runner{
		g:        g,
		coords:   coords,
		options:  cfg,
		start:    start,
		goal:     goal,
		gScore:   make(map[string]float64, len(coords)),
		cameFrom: make(map[string]string),
		pending:  make(map[string]struct{}),
		pq:       make(nodePQ, 0, len(coords)),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state for a single Search execution.
// It is discarded when Search returns.
type runner struct {
	g        *core.Graph
	coords   core.Coords
	options  Options
	start    string
	goal     string
	gScore   map[string]float64  // best known g; absent means +Inf
	cameFrom map[string]string   // node → predecessor on the best known route
	pending  map[string]struct{} // nodes with a live frontier entry
	pq       nodePQ              // min-heap of (f, id), may hold stale entries
	expanded int
}

// init seeds g(start)=0 and pushes start.
func (r *runner) init() {
	r.gScore[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.start, f: 0})
	r.pending[r.start] = struct{}{}
}

// gOf returns the best known g for id, +Inf if none.
func (r *runner) gOf(id string) float64 {
	if v, ok := r.gScore[id]; ok {
		return v
	}

	return heuristic.Inf
}

// process pops the frontier until goal is reached or the frontier is empty.
func (r *runner) process() (Result, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		// 1) Pop; discard entries whose node is no longer pending.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if _, ok := r.pending[u]; !ok {
			continue
		}
		delete(r.pending, u)

		// 2) Goal test happens on pop, not on push.
		if u == r.goal {
			path := reconstructPath(r.cameFrom, u, r.start)
			return Result{
				Path:     path,
				Cost:     r.gScore[u],
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		// 3) Cancellation and expansion cap.
		if err := ctx.Err(); err != nil {
			return Result{Expanded: r.expanded}, err
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Result{Expanded: r.expanded}, ErrExpansionLimit
		}
		r.expanded++

		// 4) Relax outgoing edges.
		r.relax(u)
	}

	r.options.Logger.Debug("astar: frontier exhausted",
		slog.String("start", r.start),
		slog.String("goal", r.goal),
		slog.Int("expanded", r.expanded),
	)

	return Result{Expanded: r.expanded}, ErrNoPath
}

// relax examines each neighbor of u in adjacency order.
// A node missing from the graph has no neighbors.
func (r *runner) relax(u string) {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return
	}
	prev, hasPrev := r.cameFrom[u]
	cfg := r.options

	for _, nb := range neighbors {
		v := nb.ID

		// No immediate U-turn.
		if hasPrev && v == prev {
			continue
		}

		// Forbidden unless goal or explicitly re-permitted by the guide path.
		if cfg.Forbidden.Has(v) && v != r.goal && !cfg.Guide.Contains(v) {
			continue
		}

		// Real travel cost from coordinates; the edge weight is not consulted.
		tentative := r.gOf(u) + heuristic.Distance(u, v, r.coords)
		if !(tentative < r.gOf(v)) {
			continue
		}

		r.cameFrom[v] = u
		r.gScore[v] = tentative
		f := tentative +
			heuristic.Distance(v, r.goal, r.coords) +
			cfg.BiasWeight*heuristic.BiasWith(v, cfg.Guide, cfg.Penalty)

		// A pending node keeps its old entry; only non-pending nodes are pushed.
		if _, ok := r.pending[v]; !ok {
			heap.Push(&r.pq, &nodeItem{id: v, f: f})
			r.pending[v] = struct{}{}
		}
	}
}

// reconstructPath walks the came-from chain from current back to start and
// returns it in forward order.
func reconstructPath(cameFrom map[string]string, current, start string) []string {
	path := []string{current}
	for current != start {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one frontier entry.
type nodeItem struct {
	id string
	f  float64
}

// nodePQ is a min-heap of *nodeItem ordered by (f, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then by ID so equal scores pop deterministically.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
