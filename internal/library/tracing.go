package library

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"

const (
	attrBookID   = attribute.Key("book.id")
	attrMemberID = attribute.Key("member.id")
	attrKind     = attribute.Key("error.kind")
)

type Option func(*options)

type options struct {
	tracer trace.Tracer
}

// WithTracer replaces the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

func newOptions(opts []Option) options {
	o := options{tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func bookAttr(id uuid.UUID) attribute.KeyValue {
	return attrBookID.String(id.String())
}

func memberAttr(id uuid.UUID) attribute.KeyValue {
	return attrMemberID.String(id.String())
}

func startSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		kind := KindOf(err)
		span.SetAttributes(attrKind.String(kind.String()))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
