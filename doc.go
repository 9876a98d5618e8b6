// Package tourplan plans guided tours over coordinate-bearing graphs.
//
// A tour starts at one node and visits an ordered list of checkpoints. Each
// leg between consecutive stops is planned by a guided A* search whose
// score adds a bias toward an optional guide path, and nodes touched by
// earlier legs are avoided by later ones.
//
//	      7───8───9
//	      │   │   │
//	      4───5───6
//	      │   │   │
//	 start 1───2───3
//
// Packages:
//
//	core/       Graph, coordinate map, node sets and guide paths
//	heuristic/  Euclidean distance and path-bias terms
//	astar/      single-segment guided search
//	mission/    sequencer that stitches segments into one tour
//	reach/      breadth-first reachability pre-checks
//	spatial/    R-tree index for nearest-node and window queries
//	config/     YAML mission files
//	telemetry/  OpenTelemetry providers for the command
//
// The tourplan command in cmd/tourplan drives all of them from a mission file.
package tourplan
