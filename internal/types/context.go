package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxInstance  ContextKey = "ctx_instance"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetInstance returns the billing instance selector from the context
func GetInstance(ctx context.Context) string {
	if instance, ok := ctx.Value(CtxInstance).(string); ok {
		return instance
	}
	return ""
}

// SetInstance sets the billing instance selector in the context
func SetInstance(ctx context.Context, instance string) context.Context {
	return context.WithValue(ctx, CtxInstance, instance)
}
