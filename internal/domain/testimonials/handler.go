package testimonials

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dog-years/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/admin/testimonials", func(tr chi.Router) {
		tr.Use(middleware.RequireAuth)

		tr.Get("/", listHandler(svc))
		tr.Post("/", createHandler(svc))
		tr.Put("/{testimonialID}", updateHandler(svc))
		tr.Delete("/{testimonialID}", deleteHandler(svc))
	})

	r.Get("/api/testimonials", publicListHandler(svc))
}

type testimonialRequest struct {
	Name        *string `json:"name"`
	DogName     *string `json:"dogName"`
	DogAge      *string `json:"dogAge"`
	Status      *string `json:"status"`
	StatusColor *string `json:"statusColor"`
	Image       *string `json:"image"`
	Quote       *string `json:"quote"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

type testimonialResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DogName     string    `json:"dogName"`
	DogAge      string    `json:"dogAge"`
	Status      string    `json:"status"`
	StatusColor string    `json:"statusColor,omitempty"`
	Image       string    `json:"image,omitempty"`
	Quote       string    `json:"quote"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// createHandler godoc
// @Summary Crear testimonio
// @Description Si status viene vacío y dogAge empieza con años ("8 years") se deriva la etapa de vida.
// @Tags testimonials
// @Accept json
// @Produce json
// @Param payload body testimonialRequest true "Testimonio"
// @Success 201 {object} testimonialResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "authentication required"
// @Router /api/admin/testimonials [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req testimonialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Name:        deref(req.Name),
			DogName:     deref(req.DogName),
			DogAge:      deref(req.DogAge),
			Status:      deref(req.Status),
			StatusColor: deref(req.StatusColor),
			Image:       deref(req.Image),
			Quote:       deref(req.Quote),
			IsActive:    req.IsActive,
		}
		if req.Order != nil {
			in.Order = *req.Order
		}

		t, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(t))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "testimonialID")), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var req testimonialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Update(r.Context(), id, UpdateInput{
			Name:        req.Name,
			DogName:     req.DogName,
			DogAge:      req.DogAge,
			Status:      req.Status,
			StatusColor: req.StatusColor,
			Image:       req.Image,
			Quote:       req.Quote,
			IsActive:    req.IsActive,
			Order:       req.Order,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(t))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "testimonialID")), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// publicListHandler godoc
// @Summary Testimonios activos
// @Tags public
// @Produce json
// @Success 200 {array} testimonialResponse
// @Router /api/testimonials [get]
func publicListHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "name, dogName and quote are required", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponses(items []Testimonial) []testimonialResponse {
	out := make([]testimonialResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toResponse(t))
	}
	return out
}

func toResponse(t Testimonial) testimonialResponse {
	return testimonialResponse{
		ID:          t.ID,
		Name:        t.Name,
		DogName:     t.DogName,
		DogAge:      t.DogAge,
		Status:      t.Status,
		StatusColor: t.StatusColor,
		Image:       t.Image,
		Quote:       t.Quote,
		IsActive:    t.IsActive,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
