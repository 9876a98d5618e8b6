package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tourplan/core"
	"github.com/katalvlaran/tourplan/heuristic"
)

// DefaultBiasWeight is the multiplier W applied to the guide-path bias.
// A plan run overrides it once (WithBiasWeight), never per segment.
const DefaultBiasWeight = 5.0

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrEmptyStart indicates that the start node ID is empty.
	ErrEmptyStart = errors.New("astar: start node ID is empty")

	// ErrEmptyGoal indicates that the goal node ID is empty.
	ErrEmptyGoal = errors.New("astar: goal node ID is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNoPath indicates that the frontier was exhausted without reaching the goal.
	ErrNoPath = errors.New("astar: no path found")

	// ErrExpansionLimit indicates that the expansion cap was reached.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Result is the outcome of one Search call.
type Result struct {
	// Path lists nodes from start to goal inclusive; nil when not found.
	Path []string

	// Cost is the accumulated Euclidean length of Path.
	Cost float64

	// Expanded counts nodes popped and expanded (stale entries excluded).
	Expanded int

	// Found reports whether goal was reached.
	Found bool
}

// Options configures Search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// Guide is the preferred route for this segment; empty disables the bias.
	Guide core.GuidePath

	// Forbidden holds nodes that may not be entered unless they are the goal
	// or on Guide. It is read, never modified.
	Forbidden core.NodeSet

	// BiasWeight is W in f = g + h1 + W·h2. Must be ≥ 0.
	BiasWeight float64

	// Penalty is the bias for nodes off a non-empty Guide. Must be ≥ 0.
	Penalty float64

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many
	// expansions. 0 means unlimited.
	MaxExpansions int

	// Logger receives debug records; defaults to slog.Default().
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - empty guide path and forbidden set
//   - BiasWeight = DefaultBiasWeight
//   - Penalty = heuristic.DefaultPenalty
//   - no expansion cap
//   - slog.Default() logger
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		BiasWeight:    DefaultBiasWeight,
		Penalty:       heuristic.DefaultPenalty,
		MaxExpansions: 0,
		Logger:        slog.Default(),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGuidePath sets the guide path for this segment.
func WithGuidePath(guide core.GuidePath) Option {
	return func(o *Options) { o.Guide = guide }
}

// WithForbidden sets the forbidden node set.
func WithForbidden(forbidden core.NodeSet) Option {
	return func(o *Options) { o.Forbidden = forbidden }
}

// WithBiasWeight overrides DefaultBiasWeight. Negative values are rejected
// with ErrOptionViolation.
func WithBiasWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: bias weight cannot be negative (%g)", ErrOptionViolation, w)
			return
		}
		o.BiasWeight = w
	}
}

// WithPenalty overrides heuristic.DefaultPenalty. Negative values are
// rejected with ErrOptionViolation.
func WithPenalty(p float64) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: penalty cannot be negative (%g)", ErrOptionViolation, p)
			return
		}
		o.Penalty = p
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0:  abort after n expansions
//	n == 0: unlimited
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
