package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dog-years/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenEmpty     = errors.New("token is empty")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrSessionExpired = errors.New("session expired or revoked")
	ErrNotConfigured  = errors.New("session manager not configured")
)

const issuer = "dog-years"

// Manager implementa auth.AuthVerifier y auth.TokenIssuer.
// El token es un JWT HS256 que referencia una sesión server-side (claim "sid");
// Verify exige firma válida Y sesión viva, así logout invalida el token al instante.
type Manager struct {
	store  auth.SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Config struct {
	Secret string
	TTL    time.Duration
}

func NewManager(store auth.SessionStore, cfg Config) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		store:  store,
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

type tokenClaims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func (m *Manager) Issue(ctx context.Context, sub auth.Subject) (auth.Token, error) {
	if m == nil || m.store == nil || len(m.secret) == 0 {
		return auth.Token{}, ErrNotConfigured
	}
	if strings.TrimSpace(sub.UserID) == "" {
		return auth.Token{}, errors.New("session subject missing user id")
	}

	now := m.now().UTC()
	s := auth.Session{
		ID:        uuid.NewString(),
		UserID:    sub.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Create(ctx, s); err != nil {
		return auth.Token{}, fmt.Errorf("create session: %w", err)
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		SessionID: s.ID,
		Username:  sub.Username,
		Role:      sub.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.UserID,
			ID:        s.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	})
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		_ = m.store.Delete(ctx, s.ID)
		return auth.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return auth.Token{
		Value:     signed,
		SessionID: s.ID,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

func (m *Manager) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if m == nil || m.store == nil || len(m.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var tc tokenClaims
	_, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if strings.TrimSpace(tc.Subject) == "" || strings.TrimSpace(tc.SessionID) == "" {
		return auth.Claims{}, ErrTokenInvalid
	}

	s, err := m.store.Get(ctx, tc.SessionID)
	if err != nil || s.UserID != tc.Subject || s.Expired(m.now()) {
		return auth.Claims{}, ErrSessionExpired
	}

	return auth.Claims{
		UserID:    tc.Subject,
		Username:  tc.Username,
		Role:      tc.Role,
		SessionID: s.ID,
	}, nil
}

func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	if m == nil || m.store == nil {
		return ErrNotConfigured
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	return m.store.Delete(ctx, sessionID)
}

func (m *Manager) RevokeUser(ctx context.Context, userID string) error {
	if m == nil || m.store == nil {
		return ErrNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil
	}
	return m.store.DeleteByUser(ctx, userID)
}

// PurgeExpired borra sesiones vencidas; lo llama el cron de serve y el comando sessions purge.
func (m *Manager) PurgeExpired(ctx context.Context) (int, error) {
	if m == nil || m.store == nil {
		return 0, ErrNotConfigured
	}
	return m.store.DeleteExpired(ctx, m.now())
}
