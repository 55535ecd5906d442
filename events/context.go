package events

import "context"

type correlationIDKey struct{}

// WithCorrelationID stamps a request correlation id onto the context so
// publishers can tag the events emitted while handling that request.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFrom reads the id stored by WithCorrelationID; empty when
// none was set.
func CorrelationIDFrom(ctx context.Context) string {
	if s, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return s
	}
	return ""
}
