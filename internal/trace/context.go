package trace

import "context"

// ключи контекста: трейсер и текущий спан
type (
	tracerKey struct{}
	spanKey   struct{}
)

// SpanContext is what a child span needs from its parent.
type SpanContext struct {
	SpanID uint64
	GID    uint64
}

// WithTracer returns ctx carrying t. A nil t is stored as Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(orBackground(ctx), tracerKey{}, t)
}

// FromContext never returns nil.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

// WithSpanContext marks sc as the parent for spans started from the result.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(orBackground(ctx), spanKey{}, sc)
}

// CurrentSpan is zero outside any span.
func CurrentSpan(ctx context.Context) (sc SpanContext) {
	if ctx != nil {
		sc, _ = ctx.Value(spanKey{}).(SpanContext)
	}
	return sc
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
