// Package spatial indexes node coordinates in an R-tree for nearest-node
// and window queries.
//
// The index is built once from a core.Coords map and is read-only
// afterwards. Each node is stored as a degenerate rectangle of side
// 2·Tolerance around its point. Query results are ordered by exact planar
// distance, then by node ID, so equal distances come back in a stable order.
package spatial
