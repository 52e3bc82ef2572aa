package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxAccountID ContextKey = "ctx_account_id"
)

func GetAccountID(ctx context.Context) string {
	if accountID, ok := ctx.Value(CtxAccountID).(string); ok {
		return accountID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetAccountID sets the account ID in the context
func SetAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, CtxAccountID, accountID)
}

// SetRequestID sets the request ID in the context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}
