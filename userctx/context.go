package userctx

import "context"

// Context key type
type contextKey string

const usernameKey contextKey = "username"

// SetUsername adds the authenticated operator's username to the request context
func SetUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsername retrieves the operator's username from the request context.
// Unauthenticated requests (the public resolution endpoints) report "anonymous".
func GetUsername(ctx context.Context) string {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok {
		return "anonymous"
	}
	return username
}
