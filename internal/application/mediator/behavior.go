package mediator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/realestate/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Next invokes the rest of the pipeline
type Next func(ctx context.Context) (any, error)

// Behavior wraps the dispatch of every request
type Behavior interface {
	Handle(ctx context.Context, request any, next Next) (any, error)
}

// BehaviorFunc adapts a function to Behavior
type BehaviorFunc func(ctx context.Context, request any, next Next) (any, error)

// Handle calls f(ctx, request, next)
func (f BehaviorFunc) Handle(ctx context.Context, request any, next Next) (any, error) {
	return f(ctx, request, next)
}

// RequestName returns the type name used in logs and spans
func RequestName(request any) string {
	return fmt.Sprintf("%T", request)
}

// Outcomes recorded by MetricsBehavior
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// isClientError reports errors caused by the caller's input
func isClientError(err error) bool {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		return true
	}
	var derr *shared.DomainError
	return errors.As(err, &derr)
}

// LoggingBehavior logs every dispatch with its duration. Client errors are
// logged at info level, everything else at error level.
func LoggingBehavior(logger *zap.Logger) Behavior {
	return BehaviorFunc(func(ctx context.Context, request any, next Next) (any, error) {
		start := time.Now()
		name := RequestName(request)

		result, err := next(ctx)

		fields := []zap.Field{
			zap.String("request", name),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err == nil:
			logger.Debug("Request handled", fields...)
		case isClientError(err):
			logger.Info("Request rejected", append(fields, zap.Error(err))...)
		default:
			logger.Error("Request failed", append(fields, zap.Error(err))...)
		}
		return result, err
	})
}

// TracingBehavior opens a span per dispatched request
func TracingBehavior(tracer trace.Tracer) Behavior {
	return BehaviorFunc(func(ctx context.Context, request any, next Next) (any, error) {
		name := RequestName(request)
		ctx, span := tracer.Start(ctx, "mediator.Send "+name,
			trace.WithAttributes(attribute.String("mediator.request", name)))
		defer span.End()

		result, err := next(ctx)
		if err != nil {
			span.RecordError(err)
			if !isClientError(err) {
				span.SetStatus(codes.Error, err.Error())
			}
		}
		return result, err
	})
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case isClientError(err):
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

// MetricsBehavior counts dispatched requests and records their latency,
// labelled by request type and outcome
func MetricsBehavior(meter metric.Meter) (Behavior, error) {
	total, err := meter.Int64Counter("mediator_requests_total",
		metric.WithDescription("Total number of dispatched requests"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}
	duration, err := meter.Float64Histogram("mediator_request_duration_seconds",
		metric.WithDescription("Request handling latency in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5))
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	return BehaviorFunc(func(ctx context.Context, request any, next Next) (any, error) {
		start := time.Now()
		result, err := next(ctx)

		attrs := metric.WithAttributes(
			attribute.String("request", RequestName(request)),
			attribute.String("outcome", outcomeOf(err)),
		)
		total.Add(ctx, 1, attrs)
		duration.Record(ctx, time.Since(start).Seconds(), attrs)
		return result, err
	}), nil
}
