package registration

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names and attribute keys for registration tracing.
const (
	SpanRegister = "registration.register"

	AttrAttemptID  = "registration.attempt_id"
	AttrEmailSet   = "registration.email_set"
	AttrPhoneLen   = "registration.phone_length"
	AttrErrorMsg   = "error.message"
	AttrOutcome    = "registration.outcome"
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type tracedRegistrar struct {
	next   Registrar
	tracer trace.Tracer
}

// WithTracing wraps r so every Register call runs inside a span.
// Field values are not recorded; only shape information is.
func WithTracing(r Registrar, tracer trace.Tracer) Registrar {
	return &tracedRegistrar{next: r, tracer: tracer}
}

func (t *tracedRegistrar) Register(ctx context.Context, in Input) error {
	ctx, span := t.tracer.Start(ctx, SpanRegister,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrAttemptID, AttemptID(ctx)),
			attribute.Bool(AttrEmailSet, in.Email != ""),
			attribute.Int(AttrPhoneLen, len(in.Phone)),
		),
	)
	defer span.End()

	err := t.next.Register(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(
			attribute.String(AttrOutcome, OutcomeFailure),
			attribute.String(AttrErrorMsg, err.Error()),
		)
		return err
	}

	span.SetStatus(codes.Ok, "")
	span.SetAttributes(attribute.String(AttrOutcome, OutcomeSuccess))
	return nil
}
