package mission

import (
	"errors"

	"github.com/katalvlaran/tourplan/core"
	"github.com/katalvlaran/tourplan/heuristic"
)

// Plan is the result of one planning run.
type Plan struct {
	// ID identifies the run in logs and traces.
	ID string `json:"id"`

	// Route is the full tour from Start through every checkpoint, without
	// repeated boundary nodes.
	Route []string `json:"route"`

	// Segments lists the per-checkpoint sub-routes in order.
	Segments []Segment `json:"segments"`

	// Collected lists resource checkpoints in the order they were reached.
	Collected []string `json:"collected"`

	// Warnings holds advisory notes; they never affect Status.
	Warnings []Warning `json:"warnings,omitempty"`

	// Failures lists every segment that fell back to a direct jump.
	Failures []SegmentFailure `json:"-"`

	// Status is StatusDegraded iff Failures is non-empty.
	Status Status `json:"status"`
}

// Degraded reports whether any segment fell back.
func (p *Plan) Degraded() bool { return p.Status == StatusDegraded }

// Err joins the segment failures, or returns nil for a complete plan.
func (p *Plan) Err() error {
	if len(p.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(p.Failures))
	for i, f := range p.Failures {
		errs[i] = f
	}

	return errors.Join(errs...)
}

// Length returns the Euclidean length of the route.
func (p *Plan) Length(coords core.Coords) float64 {
	return PathLength(p.Route, coords)
}

// Legs splits the route after every collected resource node. Each leg
// starts where the previous one ended; a route with no collected resource
// is a single leg.
func (p *Plan) Legs() [][]string {
	if len(p.Route) == 0 {
		return nil
	}
	switches := core.NewNodeSet(p.Collected...)
	var legs [][]string
	begin := 0
	for i := 1; i < len(p.Route); i++ {
		if switches.Has(p.Route[i]) && i < len(p.Route)-1 {
			legs = append(legs, p.Route[begin:i+1])
			begin = i
		}
	}

	return append(legs, p.Route[begin:])
}

// PathLength sums the Euclidean hop lengths of path. A hop touching a node
// without coordinates makes the result +Inf.
func PathLength(path []string, coords core.Coords) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += heuristic.Distance(path[i], path[i+1], coords)
	}

	return total
}
