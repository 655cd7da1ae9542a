package auth

import (
	"errors"
	"time"
)

// ErrSessionNotFound lo devuelven los SessionStore cuando el id no existe.
var ErrSessionNotFound = errors.New("session not found")

// Claims representa la información extraída del token.
type Claims struct {
	UserID    string
	Username  string
	Role      string
	SessionID string
}

func (c Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// Session es la sesión server-side que respalda un token emitido en el login.
// Borrar la sesión invalida el token aunque la firma siga siendo válida.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Subject es lo mínimo que necesita el emisor de tokens sobre el usuario.
type Subject struct {
	UserID   string
	Username string
	Role     string
}

// Token es el resultado de un login exitoso.
type Token struct {
	Value     string
	SessionID string
	ExpiresAt time.Time
}
