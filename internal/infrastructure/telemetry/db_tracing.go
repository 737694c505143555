package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // Include query variables in spans (dev only)
	SlowQueryThresh time.Duration // Queries slower than this are flagged on their span
	DBSystem        string        // postgresql or sqlite
	TracerProvider  trace.TracerProvider
}

// DefaultDBTracingConfig returns default configuration for database tracing.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "postgresql",
	}
}

type startTimeKey struct{}

// RegisterDBTracing installs otelgorm on db plus callbacks that annotate
// each statement span with the table, affected rows and slow-query flag
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	before := func(tx *gorm.DB) {
		if tx.Statement.Context != nil {
			tx.Statement.Context = context.WithValue(tx.Statement.Context, startTimeKey{}, time.Now())
		}
	}
	after := annotateSpan(cfg.SlowQueryThresh)

	cb := db.Callback()
	errs := []error{
		cb.Create().Before("gorm:create").Register("realestate:before_create", before),
		cb.Query().Before("gorm:query").Register("realestate:before_query", before),
		cb.Update().Before("gorm:update").Register("realestate:before_update", before),
		cb.Delete().Before("gorm:delete").Register("realestate:before_delete", before),
		cb.Row().Before("gorm:row").Register("realestate:before_row", before),
		cb.Raw().Before("gorm:raw").Register("realestate:before_raw", before),
		cb.Create().After("gorm:create").Register("realestate:after_create", after),
		cb.Query().After("gorm:query").Register("realestate:after_query", after),
		cb.Update().After("gorm:update").Register("realestate:after_update", after),
		cb.Delete().After("gorm:delete").Register("realestate:after_delete", after),
		cb.Row().After("gorm:row").Register("realestate:after_row", after),
		cb.Raw().After("gorm:raw").Register("realestate:after_raw", after),
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	// Registered after the annotation callbacks so the statement span is
	// still open when they run
	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBSystem)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
		zap.String("db_system", cfg.DBSystem),
	)
	return nil
}

func annotateSpan(slowThresh time.Duration) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		ctx := tx.Statement.Context
		if ctx == nil {
			return
		}
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return
		}

		span.SetAttributes(attribute.Int64("db.rows_affected", tx.Statement.RowsAffected))
		if tx.Statement.Table != "" {
			span.SetAttributes(attribute.String("db.sql.table", tx.Statement.Table))
		}
		if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, tx.Error.Error())
			span.RecordError(tx.Error)
		}

		start, ok := ctx.Value(startTimeKey{}).(time.Time)
		if !ok || slowThresh <= 0 {
			return
		}
		if elapsed := time.Since(start); elapsed > slowThresh {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
