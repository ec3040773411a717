package httpapi

import (
	"context"

	"vitrine-be/internal/session"
)

type ctxKey string

const sessionKey ctxKey = "storefront_session"

func withSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func sessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}
