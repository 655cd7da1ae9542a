package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite y revoca tokens de sesión.
type TokenIssuer interface {
	Issue(ctx context.Context, sub Subject) (Token, error)
	Revoke(ctx context.Context, sessionID string) error
	// RevokeUser cierra todas las sesiones de un usuario (p.ej. al borrarlo).
	RevokeUser(ctx context.Context, userID string) error
}

// SessionStore persiste sesiones (memoria o postgres).
type SessionStore interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
