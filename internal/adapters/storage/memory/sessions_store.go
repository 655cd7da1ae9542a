package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"dog-years/internal/ports/auth"
)

type sessionStore struct {
	mu   sync.RWMutex
	byID map[string]auth.Session
}

func NewSessionStore() auth.SessionStore {
	return &sessionStore{
		byID: make(map[string]auth.Session),
	}
}

func (s *sessionStore) Create(ctx context.Context, sess auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(sess.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := s.byID[sess.ID]; exists {
		return errors.New("session already exists")
	}
	s.byID[sess.ID] = sess
	return nil
}

func (s *sessionStore) Get(ctx context.Context, id string) (auth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byID[id]
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return sess, nil
}

// Delete es idempotente (logout repetido no falla).
func (s *sessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byID, id)
	return nil
}

func (s *sessionStore) DeleteByUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.byID {
		if sess.UserID == userID {
			delete(s.byID, id)
		}
	}
	return nil
}

func (s *sessionStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.byID {
		if sess.Expired(now) {
			delete(s.byID, id)
			n++
		}
	}
	return n, nil
}
