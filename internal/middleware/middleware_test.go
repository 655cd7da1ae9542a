package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-years/internal/platform/logger"
	"dog-years/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type stubVerifier map[string]auth.Claims

func (s stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	c, ok := s[token]
	if !ok {
		return auth.Claims{}, errors.New("unknown token")
	}
	return c, nil
}

var verifier = stubVerifier{
	"admin-token":  {UserID: "u-1", Role: "admin", SessionID: "s-1"},
	"editor-token": {UserID: "u-2", Role: "editor", SessionID: "s-2"},
}

func whoAmI() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			_, _ = w.Write([]byte("anonymous"))
			return
		}
		_, _ = w.Write([]byte(c.UserID))
	})
}

func TestAuthContext_TokenSources(t *testing.T) {
	h := AuthContext(verifier)(whoAmI())

	cases := []struct {
		name string
		prep func(r *http.Request)
		want string
	}{
		{"no token", func(r *http.Request) {}, "anonymous"},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer admin-token") }, "u-1"},
		{"bearer lowercase", func(r *http.Request) { r.Header.Set("Authorization", "bearer editor-token") }, "u-2"},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "editor-token"}) }, "u-2"},
		{"bearer wins over cookie", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer admin-token")
			r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "editor-token"})
		}, "u-1"},
		{"invalid token passes anonymous", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, "anonymous"},
		{"basic scheme ignored", func(r *http.Request) { r.Header.Set("Authorization", "Basic admin-token") }, "anonymous"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.prep(req)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tc.want, rr.Body.String())
		})
	}
}

func TestRequireAuthAndAdmin(t *testing.T) {
	authed := AuthContext(verifier)(RequireAuth(whoAmI()))
	admin := AuthContext(verifier)(RequireAdmin(whoAmI()))

	do := func(h http.Handler, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusUnauthorized, do(authed, "").Code)
	assert.Equal(t, http.StatusOK, do(authed, "editor-token").Code)

	assert.Equal(t, http.StatusForbidden, do(admin, "").Code)
	rr := do(admin, "editor-token")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "admin access required")
	assert.Equal(t, http.StatusOK, do(admin, "admin-token").Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:3333"))

	// otra IP tiene su propio bucket
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:1111"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:4444"))

	now = now.Add(11 * time.Minute)
	assert.Equal(t, 2, rl.Cleanup())
}

func TestAccessLog_WritesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := logger.NewWithCore(logger.Options{Level: logger.Info, Format: logger.FormatJSON}, zapcore.AddSync(&buf))

	h := chimw.RequestID(AccessLog(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("inside", nil)
		w.WriteHeader(http.StatusTeapot)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusTeapot, rr.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inside, access map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inside))
	require.NoError(t, json.Unmarshal(lines[1], &access))

	assert.NotEmpty(t, inside["request_id"])
	assert.Equal(t, inside["request_id"], access["request_id"])
	assert.Equal(t, "access log", access["msg"])
	assert.Equal(t, float64(http.StatusTeapot), access["status"])
}
