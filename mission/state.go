package mission

import "github.com/katalvlaran/tourplan/core"

// State is the bookkeeping carried from one segment to the next.
// It lives for one planning run.
type State struct {
	Route     []string
	Visited   core.NodeSet
	Collected []string

	collected core.NodeSet
	resources core.NodeSet
}

// NewState returns a State whose visited set holds start.
func NewState(start string, resources []string) *State {
	return &State{
		Visited:   core.NewNodeSet(start),
		collected: core.NewNodeSet(),
		resources: core.NewNodeSet(resources...),
	}
}

// Collect records target if it is a resource not yet collected and
// reports whether it was newly recorded.
func (s *State) Collect(target string) bool {
	if !s.resources.Has(target) || s.collected.Has(target) {
		return false
	}
	s.collected.Add(target)
	s.Collected = append(s.Collected, target)

	return true
}

// Absorb marks every node of path visited and appends path to the route,
// dropping its first node when the route is not empty.
func (s *State) Absorb(path []string) {
	s.Visited.Add(path...)
	if len(s.Route) == 0 {
		s.Route = append(s.Route, path...)
		return
	}
	if len(path) > 1 {
		s.Route = append(s.Route, path[1:]...)
	}
}
