// Package astar implements the single-segment search of a tour plan: a
// best-first (A*-style) search between two nodes of a core.Graph whose
// priority blends real travel distance, a goal heuristic and a soft pull
// toward a guide path, under anti-backtracking rules.
//
// Score:
//
//	f(n) = g(n) + h1(n) + W·h2(n)
//
//	– g:  accumulated Euclidean length from start (coordinates, not edge weights).
//	– h1: Euclidean distance from n to goal.
//	– h2: heuristic.BiasWith(n, guide, penalty), 0 on the guide path, penalty off it.
//	– W:  bias weight (DefaultBiasWeight unless overridden once per run).
//
// Once the bias term is non-zero the score is no longer admissible; the
// returned route is the guided route, not necessarily the shortest one.
//
// Expansion rules for a popped node u with predecessor p:
//
//   - u == goal ends the search; the path is rebuilt from the came-from chain.
//   - A neighbor equal to p is skipped (no immediate U-turn).
//   - A neighbor in the forbidden set is skipped unless it is the goal or lies
//     on the guide path.
//   - Otherwise the neighbor is relaxed when g improves strictly.
//
// Frontier:
//
//	A binary min-heap ordered by (f, node ID). A node is pushed only when it
//	is not already pending; improving a pending node leaves its old entry in
//	place. Popped entries whose node is no longer pending are discarded. This
//	is the lazy-deletion discipline: no decrease-key, stale entries tolerated.
//	Ties on f are broken by ascending node ID, which keeps results
//	deterministic.
//
// There is no closed set: a node whose g improves after it was expanded is
// pushed and expanded again.
//
// Errors:
//
//	– ErrNilGraph          graph pointer is nil.
//	– ErrEmptyStart        start ID is empty.
//	– ErrEmptyGoal         goal ID is empty.
//	– ErrOptionViolation   an Option received an invalid argument.
//	– ErrNoPath            the frontier emptied before reaching goal.
//	– ErrExpansionLimit    WithMaxExpansions cap reached.
//	– ctx.Err()            the context passed via WithContext was cancelled.
//
// A start node missing from the graph is not an error: it has no neighbors,
// so unless start == goal the search ends with ErrNoPath.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for well-formed inputs.
//   - Space: O(V + E) for scores, came-from links and heap entries.
//
// Example:
//
//	res, err := astar.Search(g, coords, "1", "16",
//	    astar.WithGuidePath(core.NewGuidePath("1", "2", "16")),
//	    astar.WithForbidden(visited),
//	)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // caller decides how to degrade
//	}
package astar
