package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// unexported so other packages cannot collide with the key
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info carries tracing data for one export run.
//   - RequestID: unique per run
//   - spanSeq: 1, 2, 3, ... for each API call within the run
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID returns a random id for tracing.
func GenerateID() string {
	return uuid.NewString()
}

// WithRun stores a fresh request id in the context.
func WithRun(ctx context.Context) context.Context {
	return WithRequestAndSpan(ctx, GenerateID(), 0)
}

// WithRequestAndSpan returns a context holding requestID and a starting span value (usually 0).
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext returns the request id stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// NextSpanID increments the span counter and returns (requestID, spanID).
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		// called outside WithRun
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
