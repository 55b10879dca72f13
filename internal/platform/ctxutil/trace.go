package ctxutil

import "context"

type traceDataKey struct{}

// TraceData carries the correlation ids for one request. The trace
// middleware sets it once; the request logger and anything downstream
// read it from the context.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

// GetTraceData returns the request's trace data, or nil outside a
// traced request.
func GetTraceData(ctx context.Context) *TraceData {
	val := ctx.Value(traceDataKey{})
	if td, ok := val.(*TraceData); ok {
		return td
	}
	return nil
}
