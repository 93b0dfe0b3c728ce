package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Database span operations.
const (
	OpQuery  = "db.query"
	OpCount  = "db.count"
	OpInsert = "db.insert"
	OpUpdate = "db.update"
	OpDelete = "db.delete"
)

// StartDatabaseSpan starts a client span for one PostgreSQL statement.
func StartDatabaseSpan(ctx context.Context, operation, table, statement string) (context.Context, trace.Span) {
	return otel.Tracer("catalogodeleite/db").Start(ctx, "DB "+operation+" "+table,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", operation),
			attribute.String("db.table", table),
			attribute.String("db.statement", statement),
		),
	)
}

// RecordError records err on the span and marks it failed. Nil is a no-op.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
