package services

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
)

var tracer = otel.Tracer("github.com/02priyeshraj/Restaurant_Management_Backend/services")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// endSpan records err on the span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func parseID(op, field, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation(op, "Invalid %s", field)
	}
	return id, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
