package mission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tourplan/astar"
	"github.com/katalvlaran/tourplan/core"
)

// Sequencer plans missions over one graph and coordinate map.
type Sequencer struct {
	g       *core.Graph
	coords  core.Coords
	options Options
}

// NewSequencer validates its inputs and returns a Sequencer.
//
// Errors:
//   - ErrNilGraph: g == nil.
//   - ErrOptionViolation: an Option received an invalid argument.
func NewSequencer(g *core.Graph, coords core.Coords, opts ...Option) (*Sequencer, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Sequencer{g: g, coords: coords, options: cfg}, nil
}

// Run plans m once. It is shorthand for NewSequencer + Sequencer.Plan.
func Run(ctx context.Context, g *core.Graph, coords core.Coords, m Mission, opts ...Option) (*Plan, error) {
	s, err := NewSequencer(g, coords, opts...)
	if err != nil {
		return nil, err
	}

	return s.Plan(ctx, m)
}

// Plan computes the tour for m.
//
// Segment failures do not make Plan fail: they are recorded on the returned
// *Plan, which is then StatusDegraded. The error result is reserved for
// invalid missions (ErrEmptyStart, ErrEmptyCheckpoint) and for context
// cancellation.
//
// A mission without checkpoints yields the route [Start].
func (s *Sequencer) Plan(ctx context.Context, m Mission) (*Plan, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if m.Start == "" {
		return nil, ErrEmptyStart
	}
	for i, cp := range m.Checkpoints {
		if cp == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyCheckpoint, i)
		}
	}

	began := time.Now()
	plan := &Plan{
		ID:     uuid.NewString(),
		Status: StatusComplete,
	}
	log := s.options.Logger.With(slog.String("plan_id", plan.ID))

	ctx, span := tracer.Start(ctx, "Sequencer.Plan", trace.WithAttributes(
		attribute.String("plan.id", plan.ID),
		attribute.String("plan.start", m.Start),
		attribute.Int("plan.checkpoints", len(m.Checkpoints)),
	))
	defer span.End()

	log.Info("mission: planning started",
		slog.String("start", m.Start),
		slog.Int("checkpoints", len(m.Checkpoints)),
	)

	state := NewState(m.Start, m.Resources)
	finish := m.finish()
	current := m.Start

	for i, target := range m.Checkpoints {
		if target == finish && len(state.Collected) < m.RequiredResources {
			w := Warning{
				Kind:    WarnInsufficientResources,
				Segment: i,
				Message: fmt.Sprintf("heading to finish %s with %d/%d resources collected",
					target, len(state.Collected), m.RequiredResources),
			}
			plan.Warnings = append(plan.Warnings, w)
			log.Warn("mission: "+w.Message, slog.Int("segment", i))
		}

		seg, failure, err := s.segment(ctx, log, i, current, target, m.GuidePaths, state)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if failure != nil {
			plan.Failures = append(plan.Failures, *failure)
			plan.Status = StatusDegraded
		}

		if state.Collect(target) {
			seg.Collected = true
			log.Info("mission: resource collected",
				slog.String("node", target),
				slog.Int("collected", len(state.Collected)),
				slog.Int("required", m.RequiredResources),
			)
		}
		state.Absorb(seg.Path)
		plan.Segments = append(plan.Segments, seg)
		current = target
	}

	if len(m.Checkpoints) == 0 {
		state.Absorb([]string{m.Start})
	}
	plan.Route = state.Route
	plan.Collected = state.Collected

	span.SetAttributes(
		attribute.String("plan.status", string(plan.Status)),
		attribute.Int("plan.route_len", len(plan.Route)),
		attribute.Int("plan.failures", len(plan.Failures)),
	)
	recordPlan(ctx, time.Since(began), plan.Status)

	log.Info("mission: planning finished",
		slog.String("status", string(plan.Status)),
		slog.Int("route_len", len(plan.Route)),
		slog.Int("collected", len(plan.Collected)),
		slog.Int("failures", len(plan.Failures)),
		slog.Duration("duration", time.Since(began)),
	)

	return plan, nil
}

// segment plans from→to against the current state. A failed search yields
// the fallback segment and a non-nil *SegmentFailure; only cancellation and
// unexpected search errors are returned as err.
func (s *Sequencer) segment(
	ctx context.Context,
	log *slog.Logger,
	index int,
	from, to string,
	guides map[string]core.GuidePath,
	state *State,
) (Segment, *SegmentFailure, error) {
	ctx, span := tracer.Start(ctx, "Sequencer.segment", trace.WithAttributes(
		attribute.Int("segment.index", index),
		attribute.String("segment.from", from),
		attribute.String("segment.to", to),
	))
	defer span.End()

	seg := Segment{Index: index, From: from, To: to}
	log = log.With(slog.Int("segment", index), slog.String("from", from), slog.String("to", to))

	// Guide lookup is keyed by the segment start, not the checkpoint.
	guide, ok := guides[from]
	if ok && !guide.Empty() {
		seg.Guide = guide.Nodes()
		log.Info("mission: guide path active", slog.Int("steps", guide.Len()))
	} else {
		log.Info("mission: no guide path for segment start")
	}
	span.SetAttributes(attribute.Int("segment.guide_len", guide.Len()))

	res, err := astar.Search(s.g, s.coords, from, to,
		astar.WithContext(ctx),
		astar.WithGuidePath(guide),
		astar.WithForbidden(state.Visited),
		astar.WithBiasWeight(s.options.BiasWeight),
		astar.WithPenalty(s.options.Penalty),
		astar.WithMaxExpansions(s.options.MaxExpansions),
		astar.WithLogger(log),
	)
	seg.Expanded = res.Expanded

	switch {
	case err == nil:
		seg.Path = res.Path
		seg.Outcome = OutcomePlanned
		seg.Length = res.Cost
		log.Debug("mission: segment planned",
			slog.Int("hops", len(res.Path)-1),
			slog.Float64("length", res.Cost),
			slog.Int("expanded", res.Expanded),
		)

	case errors.Is(err, astar.ErrNoPath), errors.Is(err, astar.ErrExpansionLimit):
		seg.Path = []string{from, to}
		seg.Outcome = OutcomeFallback
		seg.Length = PathLength(seg.Path, s.coords)
		seg.FailureText = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, "segment fell back")
		log.Warn("mission: segment search failed, substituting direct jump",
			slog.String("error", err.Error()),
			slog.Int("expanded", res.Expanded),
		)
		recordSegment(ctx, seg.Outcome, res.Expanded)

		return seg, &SegmentFailure{Index: index, From: from, To: to, Err: err}, nil

	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return seg, nil, fmt.Errorf("mission: segment %d %s→%s: %w", index, from, to, err)
	}

	recordSegment(ctx, seg.Outcome, res.Expanded)

	return seg, nil, nil
}
