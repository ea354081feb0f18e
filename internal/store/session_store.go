package store

import (
	"context"

	"github.com/noah-isme/school-portal-api/pkg/kvstore"

	"github.com/noah-isme/school-portal-api/internal/models"
)

// SessionStore persists the single sign-in record. A malformed stored value
// is treated as no session at all.
type SessionStore struct {
	kv kvstore.Store
}

// NewSessionStore creates a session store over the given backend.
func NewSessionStore(kv kvstore.Store) *SessionStore {
	return &SessionStore{kv: kv}
}

// Get loads the persisted session, reporting presence. A record that cannot
// be decoded is discarded and reported absent.
func (s *SessionStore) Get(ctx context.Context) (*models.Session, bool, error) {
	var session models.Session
	ok, err := getJSON(ctx, s.kv, keySession, &session)
	if err != nil {
		_ = s.kv.Delete(ctx, keySession)
		return nil, false, nil
	}
	if !ok {
		return nil, false, nil
	}
	return &session, true, nil
}

// Put replaces the persisted session.
func (s *SessionStore) Put(ctx context.Context, session models.Session) error {
	return setJSON(ctx, s.kv, keySession, session)
}

// Delete discards the persisted session unconditionally.
func (s *SessionStore) Delete(ctx context.Context) error {
	return s.kv.Delete(ctx, keySession)
}
