package auth

import (
	"context"
	"time"
)

// Session is an authenticated sign-in. A request without a Session is anonymous.
type Session struct {
	ID        string
	UserID    string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// SessionFromClaims rebuilds a session from validated token claims.
func SessionFromClaims(claims *Claims) *Session {
	s := &Session{
		ID:     claims.ID,
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session carried by ctx, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*Session)
	return session, ok && session != nil
}
