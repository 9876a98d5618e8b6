package reach

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tourplan/core"
)

var (
	// ErrGraphNil is returned when From receives a nil graph.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrStartNotFound is returned when the start vertex is not in the graph.
	ErrStartNotFound = errors.New("reach: start vertex not found")

	// ErrNotReached is returned by PathTo for a vertex the walk never reached.
	ErrNotReached = errors.New("reach: vertex not reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Options configures From.
type Options struct {
	// Ctx cancels the walk; defaults to context.Background().
	Ctx context.Context

	// MaxDepth stops expansion beyond this many hops; 0 means unlimited.
	MaxDepth int

	// Skip excludes vertices from the walk. The start is never skipped.
	Skip core.NodeSet

	err error
}

// Option is a functional option for From.
type Option func(*Options)

// DefaultOptions walks the whole component with no exclusions.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the walk. Must be ≥ 0.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSkip excludes the given vertices.
func WithSkip(s core.NodeSet) Option {
	return func(o *Options) { o.Skip = s }
}

// Result is the outcome of one walk.
type Result struct {
	// Order lists vertices in visit order, start first.
	Order []string

	// Depth is the hop count from the start.
	Depth map[string]int

	// Parent maps each reached vertex except the start to its predecessor.
	Parent map[string]string

	start string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo returns the fewest-hop path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := []string{dest}
	for cur := dest; cur != r.start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

type queueItem struct {
	id    string
	depth int
}

// walker holds the state of one From call.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// From walks g breadth-first from start.
func From(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			start:  start,
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, depth int, parent string) {
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("reach: neighbors of %q: %w", item.id, err)
		}
		for _, nb := range neighbors {
			if w.res.Reached(nb.ID) || w.opts.Skip.Has(nb.ID) {
				continue
			}
			w.enqueue(nb.ID, next, item.id)
		}
	}

	return nil
}
