package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"dog-years/internal/platform/config"
	"dog-years/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newServerWith(t, nil)
}

func newServerWith(t *testing.T, tweak func(*config.Config)) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if tweak != nil {
		tweak(cfg)
	}
	rt, err := router.NewRouter(context.Background(), router.Options{Config: cfg})
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	ts := httptest.NewServer(rt)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Calculator_Public(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/calculate", "", map[string]any{"dogAge": 1, "size": "medium"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 calculate, got %d body=%s", st, string(body))
	}
	var res struct {
		HumanAge    int    `json:"humanAge"`
		Description string `json:"description"`
		LifeStage   string `json:"lifeStage"`
	}
	_ = json.Unmarshal(body, &res)
	if res.HumanAge != 12 || res.Description != "as a teenager" || res.LifeStage != "Young Adult" {
		t.Fatalf("unexpected result: %+v", res)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/calculate?age=2&size=huge", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown size, got %d body=%s", st, string(body))
	}

	// métricas expuestas
	st, body = doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "dogyears_calculator_calculations_total") {
		t.Fatalf("expected calculator metrics, got %d", st)
	}
}

func TestHTTP_EndToEnd_AdminFlow(t *testing.T) {
	ts := newServer(t)

	// 1) Sin sesión: 401 en panel, 403 en gestión de usuarios
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/admin/posts", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/admin/users", "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 without session, got %d", st)
		}
	}

	// 2) Login con el admin por defecto
	adminToken := login(t, ts.URL, "admin", "admin123")

	{
		st, body := doReq(t, ts.URL, "GET", "/api/auth/me", adminToken, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"username":"admin"`) {
			t.Fatalf("expected 200 me, got %d body=%s", st, string(body))
		}
	}

	// 3) Admin crea un editor
	editorID := createID(t, ts.URL, "/api/admin/users", adminToken, map[string]any{
		"username": "editor",
		"password": "editor123",
		"email":    "editor@dogyears.com",
		"role":     "editor",
	})

	// 4) Editor no gestiona usuarios, pero sí contenido
	editorToken := login(t, ts.URL, "editor", "editor123")
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/admin/users", editorToken, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 editor listing users, got %d", st)
		}
	}

	postID := createID(t, ts.URL, "/api/admin/posts", editorToken, map[string]any{
		"title":   "How old is my dog?",
		"content": "Depends on the size.",
	})

	// 5) Draft no es público
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/posts/how-old-is-my-dog", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for draft, got %d", st)
		}
	}

	// 6) Publicar y leer desde el sitio público
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/admin/posts/"+postID, editorToken, map[string]any{"status": "published"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 publish, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/api/posts/how-old-is-my-dog", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"publishedAt"`) {
			t.Fatalf("expected 200 public post, got %d body=%s", st, string(body))
		}
	}

	// 7) Slug duplicado => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/posts", editorToken, map[string]any{
			"title":   "How old is my dog",
			"content": "dup",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate slug, got %d", st)
		}
	}

	// 8) Testimonio con etapa derivada y visible en público
	{
		createID(t, ts.URL, "/api/admin/testimonials", editorToken, map[string]any{
			"name":    "Laura",
			"dogName": "Toby",
			"dogAge":  "9 years",
			"quote":   "Great tool",
		})
		st, body := doReq(t, ts.URL, "GET", "/api/testimonials", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"status":"Senior"`) {
			t.Fatalf("expected public testimonial with Senior status, got %d body=%s", st, string(body))
		}
	}

	// 9) Settings: valida tipo
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/settings", editorToken, map[string]any{
			"key": "show_banner", "value": "maybe", "type": "boolean",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid boolean, got %d", st)
		}
		st, body := doReq(t, ts.URL, "POST", "/api/admin/settings", editorToken, map[string]any{
			"key": "show_banner", "value": "true", "type": "boolean", "group": "appearance",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 set setting, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/api/admin/settings?group=appearance", editorToken, nil)
		if st != http.StatusOK || !strings.Contains(string(body), "show_banner") {
			t.Fatalf("expected setting listed, got %d body=%s", st, string(body))
		}
	}

	// 10) Admin no puede borrarse a sí mismo; borrar al editor invalida su sesión
	{
		st, body := doReq(t, ts.URL, "GET", "/api/auth/me", adminToken, nil)
		var me struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		_ = json.Unmarshal(body, &me)
		st, _ = doReq(t, ts.URL, "DELETE", "/api/admin/users/"+me.User.ID, adminToken, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 self delete, got %d", st)
		}

		st, body = doReq(t, ts.URL, "DELETE", "/api/admin/users/"+editorID, adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete editor, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/admin/posts", editorToken, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after editor deleted, got %d", st)
		}
	}

	// 11) Logout revoca el token
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/auth/logout", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logout, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/auth/me", adminToken, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}
}

func TestHTTP_Login_WrongPasswordAndCookie(t *testing.T) {
	ts := newServer(t)

	st, _ := doReq(t, ts.URL, "POST", "/api/auth/login", "", map[string]any{"username": "admin", "password": "nope"})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 wrong password, got %d", st)
	}

	b, _ := json.Marshal(map[string]any{"username": "admin", "password": "admin123"})
	res, err := http.Post(ts.URL+"/api/auth/login", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer res.Body.Close()

	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "dogyears_session" {
			cookie = c
		}
	}
	if cookie == nil || !cookie.HttpOnly {
		t.Fatalf("expected HttpOnly session cookie, got %+v", res.Cookies())
	}

	// la cookie sola alcanza para autenticar
	req, _ := http.NewRequest("GET", ts.URL+"/api/auth/me", nil)
	req.AddCookie(cookie)
	me, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	defer me.Body.Close()
	if me.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 me with cookie, got %d", me.StatusCode)
	}
}

func TestHTTP_UserUpdateRevokesSessions(t *testing.T) {
	ts := newServer(t)
	adminToken := login(t, ts.URL, "admin", "admin123")

	editorID := createID(t, ts.URL, "/api/admin/users", adminToken, map[string]any{
		"username": "editor",
		"password": "editor123",
		"email":    "editor@dogyears.com",
		"role":     "editor",
	})
	editorToken := login(t, ts.URL, "editor", "editor123")

	// cambiar el nombre no toca la sesión
	st, body := doReq(t, ts.URL, "PUT", "/api/admin/users/"+editorID, adminToken, map[string]any{"firstName": "Ana"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/auth/me", editorToken, nil)
	if st != http.StatusOK {
		t.Fatalf("expected editor session alive after name change, got %d", st)
	}

	// cambio de rol invalida el token emitido con el rol viejo
	st, body = doReq(t, ts.URL, "PUT", "/api/admin/users/"+editorID, adminToken, map[string]any{"role": "admin"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 role change, got %d body=%s", st, string(body))
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/auth/me", editorToken, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 after role change, got %d", st)
	}

	// cambio de password también
	newToken := login(t, ts.URL, "editor", "editor123")
	st, _ = doReq(t, ts.URL, "PUT", "/api/admin/users/"+editorID, adminToken, map[string]any{"password": "another123"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 password change, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/auth/me", newToken, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 after password change, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "PUT", "/api/admin/users/not-a-user", adminToken, map[string]any{"role": "admin"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown user, got %d", st)
	}
}

func TestHTTP_LoginLimiter_IgnoresForwardedHeaders(t *testing.T) {
	slow := func(c *config.Config) {
		c.Login.RatePerSecond = 0.001
		c.Login.Burst = 3
	}

	// sin proxy de confianza, X-Forwarded-For no cambia la clave del limiter
	ts := newServerWith(t, slow)
	statuses := loginWithForwardedFor(t, ts.URL, 4)
	if statuses[3] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 despite spoofed X-Forwarded-For, got %v", statuses)
	}

	// detrás de un proxy propio cada IP reenviada tiene su bucket
	trusted := newServerWith(t, func(c *config.Config) {
		slow(c)
		c.HTTP.TrustProxy = true
	})
	for i, st := range loginWithForwardedFor(t, trusted.URL, 4) {
		if st != http.StatusUnauthorized {
			t.Fatalf("request %d: expected 401 with trusted proxy, got %d", i, st)
		}
	}
}

// loginWithForwardedFor manda n logins fallidos, cada uno con otra IP en X-Forwarded-For.
func loginWithForwardedFor(t *testing.T, baseURL string, n int) []int {
	t.Helper()

	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		b, _ := json.Marshal(map[string]any{"username": "admin", "password": "wrong"})
		req, err := http.NewRequest("POST", baseURL+"/api/auth/login", bytes.NewReader(b))
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "203.0.113."+strconv.Itoa(i+1))

		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()
		out = append(out, res.StatusCode)
	}
	return out
}

func login(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/auth/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("login: missing token body=%s", string(body))
	}
	return resp.Token
}

// createID hace POST y devuelve el id (string o número) de la respuesta.
func createID(t *testing.T, baseURL, path, token string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, token, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID any `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	switch v := resp.ID.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	t.Fatalf("POST %s: missing id body=%s", path, string(body))
	return ""
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
