// Package heuristic provides the two pure cost terms used by the segment
// search: the Euclidean distance oracle and the guide-path bias.
//
// Distance:
//
//	Distance(a, b, coords) is the planar Euclidean norm between the positions
//	of a and b, or +Inf when either node has no position. +Inf is a sentinel,
//	not an error: a node without coordinates is never favorably expanded.
//
// Bias:
//
//	Bias(node, guide) is 0 when the guide path is empty or contains node,
//	DefaultPenalty otherwise. The penalty sits orders of magnitude above a
//	typical hop so it steers the search without forbidding anything.
//	BiasWith allows a different penalty for graphs on another scale.
package heuristic

import (
	"math"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/tourplan/core"
)

// DefaultPenalty is the bias returned for a node off a non-empty guide path.
// Coordinates are expected in pixel-like units where hops measure in the
// low hundreds.
const DefaultPenalty = 5000.0

// Inf is the distance sentinel for nodes without a position.
var Inf = math.Inf(1)

// Distance returns the Euclidean distance between a and b, or Inf when
// either is missing from coords.
//
// Complexity: O(1).
func Distance(a, b string, coords core.Coords) float64 {
	pa, ok := coords.Lookup(a)
	if !ok {
		return Inf
	}
	pb, ok := coords.Lookup(b)
	if !ok {
		return Inf
	}

	return planar.Distance(pa, pb)
}

// Bias returns 0 if guide is empty or contains node, DefaultPenalty otherwise.
func Bias(node string, guide core.GuidePath) float64 {
	return BiasWith(node, guide, DefaultPenalty)
}

// BiasWith is Bias with an explicit penalty.
func BiasWith(node string, guide core.GuidePath, penalty float64) float64 {
	if guide.Empty() || guide.Contains(node) {
		return 0
	}

	return penalty
}
