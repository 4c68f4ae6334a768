package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	KeyAuthToken CtxKey = "AuthToken"
)

// WithToken returns a context carrying the bearer token that the REST
// gateways attach to outgoing backend requests.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, KeyAuthToken, token)
}

// TokenFromContext extracts the bearer token, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(KeyAuthToken).(string)
	return token
}
