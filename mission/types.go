package mission

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tourplan/astar"
	"github.com/katalvlaran/tourplan/core"
	"github.com/katalvlaran/tourplan/heuristic"
)

// Sentinel errors for mission planning.
var (
	// ErrNilGraph indicates that a nil *core.Graph was given to NewSequencer.
	ErrNilGraph = errors.New("mission: graph is nil")

	// ErrEmptyStart indicates that the mission start node is empty.
	ErrEmptyStart = errors.New("mission: start node is empty")

	// ErrEmptyCheckpoint indicates an empty ID in the checkpoint list.
	ErrEmptyCheckpoint = errors.New("mission: checkpoint ID is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mission: invalid option supplied")

	// ErrSegmentFailed marks a segment that fell back to a direct jump.
	ErrSegmentFailed = errors.New("mission: segment search failed")
)

// Mission is the input of one planning run.
type Mission struct {
	// Start is the node the tour begins at.
	Start string

	// Checkpoints are visited in order.
	Checkpoints []string

	// Resources are the special nodes counted when reached as a checkpoint.
	Resources []string

	// RequiredResources is the count expected before heading to Finish.
	RequiredResources int

	// Finish is the node whose segment triggers the resource check.
	// Empty means the last checkpoint.
	Finish string

	// GuidePaths maps a segment start node to the guide path for that segment.
	GuidePaths map[string]core.GuidePath
}

// finish returns the effective finish node.
func (m Mission) finish() string {
	if m.Finish != "" {
		return m.Finish
	}
	if n := len(m.Checkpoints); n > 0 {
		return m.Checkpoints[n-1]
	}

	return ""
}

// Outcome classifies how a segment was produced.
type Outcome string

const (
	// OutcomePlanned means the segment came from a successful search.
	OutcomePlanned Outcome = "planned"

	// OutcomeFallback means the search failed and [from, to] was substituted.
	OutcomeFallback Outcome = "fallback"
)

// Status classifies a whole plan.
type Status string

const (
	// StatusComplete means every segment was planned.
	StatusComplete Status = "complete"

	// StatusDegraded means at least one segment fell back.
	StatusDegraded Status = "degraded"
)

// Segment is the record of one planned sub-route.
type Segment struct {
	Index       int      `json:"index"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Path        []string `json:"path"`
	Guide       []string `json:"guide,omitempty"`
	Outcome     Outcome  `json:"outcome"`
	Expanded    int      `json:"expanded"`
	Length      float64  `json:"length"`
	Collected   bool     `json:"collected,omitempty"`
	FailureText string   `json:"failure,omitempty"`
}

// SegmentFailure describes a segment whose search failed.
// It matches ErrSegmentFailed and the underlying search error with errors.Is.
type SegmentFailure struct {
	Index int
	From  string
	To    string
	Err   error
}

func (f SegmentFailure) Error() string {
	return fmt.Sprintf("%v: segment %d %s→%s: %v", ErrSegmentFailed, f.Index, f.From, f.To, f.Err)
}

// Unwrap exposes both ErrSegmentFailed and the search error.
func (f SegmentFailure) Unwrap() []error { return []error{ErrSegmentFailed, f.Err} }

// WarningKind names an advisory condition.
type WarningKind string

// WarnInsufficientResources: the finish segment started with too few resources.
const WarnInsufficientResources WarningKind = "insufficient_resources"

// Warning is an advisory note attached to a plan.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Segment int         `json:"segment"`
	Message string      `json:"message"`
}

// Options configures a Sequencer.
type Options struct {
	// BiasWeight is passed unchanged to every segment search.
	BiasWeight float64

	// Penalty is passed unchanged to every segment search.
	Penalty float64

	// MaxExpansions caps each segment search; 0 means unlimited.
	MaxExpansions int

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for NewSequencer.
type Option func(*Options)

// DefaultOptions returns the search defaults of package astar and slog.Default().
func DefaultOptions() Options {
	return Options{
		BiasWeight: astar.DefaultBiasWeight,
		Penalty:    heuristic.DefaultPenalty,
		Logger:     slog.Default(),
	}
}

// WithBiasWeight sets the bias weight for the whole run. Must be ≥ 0.
func WithBiasWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: bias weight cannot be negative (%g)", ErrOptionViolation, w)
			return
		}
		o.BiasWeight = w
	}
}

// WithPenalty sets the off-guide penalty for the whole run. Must be ≥ 0.
func WithPenalty(p float64) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: penalty cannot be negative (%g)", ErrOptionViolation, p)
			return
		}
		o.Penalty = p
	}
}

// WithMaxExpansions caps every segment search. Must be ≥ 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
