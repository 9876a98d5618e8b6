// Package reach answers plain reachability questions over a core.Graph with
// a breadth-first walk.
//
// It ignores coordinates, weights and the guided-search rules; it is the
// cheap pre-check that tells a mission author whether a checkpoint can be
// reached at all before any segment is planned.
//
// Neighbors are visited in adjacency order, so Order, Depth and Parent are
// deterministic for a given graph.
package reach
