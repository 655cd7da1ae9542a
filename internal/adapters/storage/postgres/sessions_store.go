package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dog-years/internal/ports/auth"

	"github.com/doug-martin/goqu/v9"
)

// SessionStore implementa auth.SessionStore sobre la tabla sessions.
type SessionStore struct {
	db *goqu.Database
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: builder(db)}
}

func (s *SessionStore) Create(ctx context.Context, sess auth.Session) error {
	_, err := s.db.Insert(sessionsTable).Rows(pgSession{
		ID:        sess.ID,
		UserID:    sess.UserID,
		CreatedAt: sess.CreatedAt,
		ExpiresAt: sess.ExpiresAt,
	}).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not insert session into pg: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (auth.Session, error) {
	var row pgSession
	found, err := s.db.From(sessionsTable).
		Where(goqu.I("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return auth.Session{}, fmt.Errorf("could not get session from pg: %w", err)
	}
	if !found {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return row.toDomain(), nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.Delete(sessionsTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete session in pg: %w", err)
	}
	return nil
}

func (s *SessionStore) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := s.db.Delete(sessionsTable).
		Where(goqu.I("user_id").Eq(userID)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete user sessions in pg: %w", err)
	}
	return nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := s.db.Delete(sessionsTable).
		Where(goqu.I("expires_at").Lte(now)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not purge sessions in pg: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
