package mission

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for mission planning.
var (
	tracer = otel.Tracer("tourplan.mission")
	meter  = otel.Meter("tourplan.mission")
)

// Metrics for planning runs.
var (
	segmentsTotal  metric.Int64Counter
	searchExpanded metric.Int64Histogram
	planDuration   metric.Float64Histogram
	plansTotal     metric.Int64Counter

	metricsOnce    sync.Once
	metricsInitErr error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		segmentsTotal, err = meter.Int64Counter(
			"tourplan_segments_total",
			metric.WithDescription("Segments planned, by outcome"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}

		searchExpanded, err = meter.Int64Histogram(
			"tourplan_search_expanded",
			metric.WithDescription("Nodes expanded per segment search"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}

		planDuration, err = meter.Float64Histogram(
			"tourplan_plan_duration_seconds",
			metric.WithDescription("Duration of a full mission plan"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}

		plansTotal, err = meter.Int64Counter(
			"tourplan_plans_total",
			metric.WithDescription("Mission plans, by status"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}
	})

	return metricsInitErr
}

// recordSegment records the outcome and search effort of one segment.
func recordSegment(ctx context.Context, outcome Outcome, expanded int) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", string(outcome)))
	segmentsTotal.Add(ctx, 1, attrs)
	searchExpanded.Record(ctx, int64(expanded), attrs)
}

// recordPlan records the latency and status of one plan.
func recordPlan(ctx context.Context, duration time.Duration, status Status) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", string(status)))
	planDuration.Record(ctx, duration.Seconds(), attrs)
	plansTotal.Add(ctx, 1, attrs)
}
