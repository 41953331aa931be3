package consulta

import "context"

//////////////////////////////////////////////////////////////////
// TYPES

type ctxKey int

//////////////////////////////////////////////////////////////////
// GLOBALS

const (
	requestIDKey ctxKey = iota
)

//////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithRequestID returns a context which carries the request identifier,
// used to correlate log entries and spans for one consulta
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request identifier, or an empty string
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
