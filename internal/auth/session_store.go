package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"invoicedash/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	Store(ctx context.Context, session *Session, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) bool
	Delete(ctx context.Context, sessionID string) error
}

// SessionStore keeps live sessions in Redis so sign-out can revoke a token
// before it expires.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

type sessionRecord struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Store saves a session with TTL.
func (s *SessionStore) Store(ctx context.Context, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(sessionRecord{UserID: session.UserID, Email: session.Email})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl)
}

// Exists reports whether the session is still live. An unreachable store reads as revoked.
func (s *SessionStore) Exists(ctx context.Context, sessionID string) bool {
	data, _ := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	return data != nil
}

// Delete revokes a session.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
