package wizard

import "context"

type contextKey string

const sessionKey contextKey = "sessionKey"

func NewContextWithSessionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, sessionKey, key)
}

func SessionKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(sessionKey).(string)

	return key, ok
}
