package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"dog-years/internal/middleware"
	"dog-years/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// CookieOptions controla la cookie de sesión que se setea en el login.
type CookieOptions struct {
	Secure bool
}

func RegisterRoutes(r chi.Router, svc *Service, tokens auth.TokenIssuer, cookie CookieOptions, loginMW ...func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(ar chi.Router) {
		ar.With(loginMW...).Post("/login", loginHandler(svc, tokens, cookie))
		ar.Post("/logout", logoutHandler(tokens, cookie))
		ar.With(middleware.RequireAuth).Get("/me", meHandler(svc))
	})

	// Gestión de usuarios: solo admin
	r.Route("/api/admin/users", func(ur chi.Router) {
		ur.Use(middleware.RequireAdmin)

		ur.Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))
		ur.Put("/{userID}", updateUserHandler(svc, tokens))
		ur.Delete("/{userID}", deleteUserHandler(svc, tokens))
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool         `json:"success"`
	User      userResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type updateUserRequest struct {
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Email     *string `json:"email"`
	Role      *Role   `json:"role"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida usuario/password, crea una sesión y devuelve un token (también como cookie HttpOnly).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {string} string "username and password required"
// @Failure 401 {string} string "invalid credentials"
// @Failure 429 {string} string "too many requests"
// @Router /api/auth/login [post]
func loginHandler(svc *Service, tokens auth.TokenIssuer, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Username) == "" || req.Password == "" {
			http.Error(w, "username and password required", http.StatusBadRequest)
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			http.Error(w, "login failed", http.StatusInternalServerError)
			return
		}

		tok, err := tokens.Issue(r.Context(), auth.Subject{
			UserID:   u.ID,
			Username: u.Username,
			Role:     string(u.Role),
		})
		if err != nil {
			http.Error(w, "login failed", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    tok.Value,
			Path:     "/",
			Expires:  tok.ExpiresAt,
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, loginResponse{
			Success:   true,
			User:      toUserResponse(u),
			Token:     tok.Value,
			ExpiresAt: tok.ExpiresAt,
		})
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Revoca la sesión actual (si hay) y borra la cookie. Idempotente.
// @Tags auth
// @Produce json
// @Success 200 {object} successResponse
// @Router /api/auth/logout [post]
func logoutHandler(tokens auth.TokenIssuer, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			if err := tokens.Revoke(r.Context(), claims.SessionID); err != nil {
				http.Error(w, "logout failed", http.StatusInternalServerError)
				return
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, map[string]userResponse{"user": toUserResponse(u)})
	}
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createUserHandler godoc
// @Summary Crear usuario del panel
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Datos del usuario; role admin|editor (default admin)"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "invalid input"
// @Failure 403 {string} string "admin access required"
// @Failure 409 {string} string "username or email already in use"
// @Router /api/admin/users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			Username:  req.Username,
			Password:  req.Password,
			Email:     req.Email,
			Role:      req.Role,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

func updateUserHandler(svc *Service, tokens auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id := chi.URLParam(r, "userID")
		prev, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		u, err := svc.Update(r.Context(), id, UpdateInput{
			Username:  req.Username,
			Password:  req.Password,
			Email:     req.Email,
			Role:      req.Role,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		// el rol viaja en el token: cambio de rol o password cierra sus sesiones
		if req.Password != nil || u.Role != prev.Role {
			if err := tokens.RevokeUser(r.Context(), id); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func deleteUserHandler(svc *Service, tokens auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		id := chi.URLParam(r, "userID")

		if err := svc.Delete(r.Context(), id, claims.UserID); err != nil {
			writeServiceError(w, err)
			return
		}
		// invalida los tokens vigentes del usuario borrado
		if err := tokens.RevokeUser(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrSelfDelete):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
