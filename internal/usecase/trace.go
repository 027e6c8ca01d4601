package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("roster-manager/internal/usecase")

const (
	attrJerseyNumber = attribute.Key("roster.jersey_number")
	attrRating       = attribute.Key("roster.rating")
	attrThreshold    = attribute.Key("roster.cut_threshold")
	attrPlayers      = attribute.Key("roster.players")
	attrSource       = attribute.Key("roster.source")
)

// startRosterSpan opens a span for one roster operation. Without a sampled
// parent it returns the parent span unchanged so a plain CLI run stays free.
func startRosterSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return usecaseTracer.Start(ctx, "usecase.RosterService."+operation, trace.WithAttributes(attrs...))
}

// finishRosterSpan records the outcome. Rejections a player can cause from the
// menu are expected and only annotated; anything else marks the span failed.
func finishRosterSpan(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		return
	}

	if isRosterRejection(err) {
		span.SetAttributes(attribute.String("roster.rejected", err.Error()))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func isRosterRejection(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrAlreadyOnRoster) ||
		errors.Is(err, ErrNotOnRoster) ||
		errors.Is(err, ErrEmptyRoster)
}
