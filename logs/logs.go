package logs

import (
	"context"
)

type contextKey int

// ContextKeyTraceID is the key under which the trace ID of an
// operation is kept in a context
const ContextKeyTraceID contextKey = iota

// Fields collects the key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by anything that knows how to
// describe itself as a set of log fields
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a Loggable built from a plain map
type MapFields map[string]interface{}

// Log implementation of Loggable for MapFields
func (m MapFields) Log(fields Fields) {
	for k, v := range m {
		fields.Add(k, v)
	}
}

// Logger is the logging interface used across the module
type Logger interface {
	Debug(ctx context.Context, msg string, loggables ...Loggable)
	Info(ctx context.Context, msg string, loggables ...Loggable)
	Warn(ctx context.Context, msg string, loggables ...Loggable)
	Error(ctx context.Context, msg string, loggables ...Loggable)
}

// WithTraceID returns a copy of ctx that carries traceID
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace ID kept in the context or 0
// if there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}
