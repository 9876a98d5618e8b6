// Package mission stitches guided segment searches into one continuous tour.
//
// A Mission names a start node, an ordered list of checkpoints, the
// resource nodes worth collecting, and optional guide paths keyed by the
// start node of the segment they apply to. The Sequencer plans
// start→checkpoint[0], checkpoint[0]→checkpoint[1], … in order, carrying a
// State between segments:
//
//   - Visited: every node touched by an earlier segment (seeded with the
//     start). It is passed to astar as the forbidden set, so later segments
//     do not re-route through traveled territory unless a guide path
//     re-permits a node or the node is the segment goal.
//   - Route: the global tour. The first segment is appended whole; later
//     segments drop their first node, which repeats the previous goal.
//   - Collected: resource checkpoints reached so far, deduplicated.
//
// Degraded plans:
//
//	When a segment search fails (no path, or the expansion cap is hit) the
//	Sequencer substitutes the two-node fallback [from, to], records a
//	SegmentFailure and marks the Plan StatusDegraded. Planning continues.
//	Plan.Err() returns the joined failures (errors.Is(err, ErrSegmentFailed))
//	for callers that want a degraded plan to be an error.
//
// Warnings:
//
//	If the segment heading to the finish node is about to be planned while
//	fewer than RequiredResources resources are collected, a
//	WarnInsufficientResources warning is added. It never blocks the plan.
//
// Observability:
//
//	Each Plan call opens a "Sequencer.Plan" span with one
//	"Sequencer.segment" child per segment, records segment outcome counters
//	and plan latency through the global otel MeterProvider, and logs through
//	the configured *slog.Logger.
//
// Thread safety:
//
//	A Sequencer is safe for concurrent Plan calls as long as the graph and
//	coordinates are not mutated; each call owns its State.
package mission
