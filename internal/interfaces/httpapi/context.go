package httpapi

import (
	"context"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
)

type contextKey string

const sessionContextKey contextKey = "auth_session"

func withSession(ctx context.Context, sess account.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

func sessionFromContext(ctx context.Context) (account.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(account.Session)
	return sess, ok
}
