package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"dog-years/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/admin/settings", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth)

		sr.Get("/", listHandler(svc))
		sr.Post("/", setHandler(svc))
		sr.Get("/{key}", getHandler(svc))
	})
}

type setRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  Type   `json:"type"`
	Group Group  `json:"group"`
}

type settingResponse struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Type      Type      `json:"type"`
	Group     Group     `json:"group"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// listHandler godoc
// @Summary Listar settings
// @Tags settings
// @Produce json
// @Param group query string false "general|appearance|seo"
// @Success 200 {array} settingResponse
// @Router /api/admin/settings [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), Group(strings.TrimSpace(r.URL.Query().Get("group"))))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		out := make([]settingResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Get(r.Context(), chi.URLParam(r, "key"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(s))
	}
}

// setHandler godoc
// @Summary Crear o actualizar un setting
// @Description Upsert por key. El valor se valida contra el type (boolean, number, json).
// @Tags settings
// @Accept json
// @Produce json
// @Param payload body setRequest true "Setting"
// @Success 200 {object} settingResponse
// @Failure 400 {string} string "value does not match setting type"
// @Router /api/admin/settings [post]
func setHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		s, err := svc.Set(r.Context(), SetInput(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(s))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidValue):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(s Setting) settingResponse {
	return settingResponse{
		ID:        s.ID,
		Key:       s.Key,
		Value:     s.Value,
		Type:      s.Type,
		Group:     s.Group,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
