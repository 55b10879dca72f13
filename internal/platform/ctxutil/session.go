package ctxutil

import (
	"context"

	"github.com/fedaykin-adel/sietch-shop/internal/domain"
)

type sessionDataKey struct{}

// SessionData carries the verified identity for the life of one request.
// The verifier runs once per request; everything downstream reads this.
type SessionData struct {
	Token    string
	Identity domain.Identity
}

func WithSessionData(ctx context.Context, sd *SessionData) context.Context {
	return context.WithValue(ctx, sessionDataKey{}, sd)
}

func GetSessionData(ctx context.Context) *SessionData {
	val := ctx.Value(sessionDataKey{})
	if sd, ok := val.(*SessionData); ok {
		return sd
	}
	return nil
}
