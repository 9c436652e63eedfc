package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"recipebox/internal/model"
	"recipebox/internal/pkg/jwtutil"
)

const sessionIDBytes = 32

type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID uint) error
	Load(ctx context.Context, sessionID string) (uint, bool, error)
	Delete(ctx context.Context, sessionID string) (bool, error)
}

type Session struct {
	ID     string
	UserID uint
}

// SessionManager binds opaque session ids to user ids. Clients only ever see
// a signed reference to the id; the binding itself stays in the store.
type SessionManager struct {
	store     SessionStore
	secret    string
	ttl       time.Duration
	publisher ActivityPublisher
}

func NewSessionManager(store SessionStore, secret string, ttl time.Duration, publisher ActivityPublisher) *SessionManager {
	return &SessionManager{
		store:     store,
		secret:    secret,
		ttl:       ttl,
		publisher: publisher,
	}
}

// Start opens a session for userID and returns the value to hand to the client.
func (m *SessionManager) Start(ctx context.Context, userID uint) (string, error) {
	if userID == 0 {
		return "", ErrUnauthenticated
	}

	sessionID, err := newSessionID()
	if err != nil {
		return "", err
	}
	if err := m.store.Save(ctx, sessionID, userID); err != nil {
		return "", err
	}

	token, err := jwtutil.GenerateToken(m.secret, m.ttl, sessionID)
	if err != nil {
		_, _ = m.store.Delete(ctx, sessionID)
		return "", err
	}
	return token, nil
}

// Resolve returns ErrUnauthenticated for missing, forged or ended sessions.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := jwtutil.ParseToken(m.secret, token)
	if err != nil {
		if errors.Is(err, jwtutil.ErrInvalidToken) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	userID, ok, err := m.store.Load(ctx, claims.SessionID())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthenticated
	}
	return &Session{ID: claims.SessionID(), UserID: userID}, nil
}

// End removes the session behind token. A second End on the same token fails.
func (m *SessionManager) End(ctx context.Context, token string) error {
	session, err := m.Resolve(ctx, token)
	if err != nil {
		return err
	}
	existed, err := m.store.Delete(ctx, session.ID)
	if err != nil {
		return err
	}
	if !existed {
		return ErrUnauthenticated
	}
	recordActivity(ctx, m.publisher, session.UserID, model.ActivityLogout, 0)
	return nil
}

func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id failed: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
