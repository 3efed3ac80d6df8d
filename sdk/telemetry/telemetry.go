// Package telemetry provides support for initializing the telemetry system.
package telemetry

import (
	"context"

	"github.com/google/uuid"
)

type telKey int

const (
	traceIDKey telKey = iota + 1
)

const noTrace = "--------NOTRACE--------"

type Telemetry struct{}

// Creates a new telemetry instance
func NewTelemetry() Telemetry {
	return Telemetry{}
}

// SetTraceID stores a fresh random trace id in the context.
func (t Telemetry) SetTraceID(ctx context.Context) context.Context {
	tid, err := uuid.NewRandom()
	if err != nil {
		return context.WithValue(ctx, traceIDKey, noTrace)
	}
	return context.WithValue(ctx, traceIDKey, tid.String())
}

func (t Telemetry) GetTraceID(ctx context.Context) string {
	v, ok := ctx.Value(traceIDKey).(string)
	if !ok {
		return noTrace
	}
	return v
}
