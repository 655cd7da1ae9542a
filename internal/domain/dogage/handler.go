package dogage

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// La calculadora es pública: sin RequireAuth.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/calculate", func(cr chi.Router) {
		cr.Post("/", calculatePostHandler(svc))
		cr.Get("/", calculateGetHandler(svc))
	})
}

type calculateRequest struct {
	DogAge   *float64 `json:"dogAge"`
	Birthday string   `json:"birthday"`
	Size     string   `json:"size"`
}

type calculateResponse struct {
	HumanAge    int     `json:"humanAge"`
	Description string  `json:"description"`
	LifeStage   string  `json:"lifeStage"`
	DogAge      float64 `json:"dogAge"`
	Size        Size    `json:"size"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// calculatePostHandler godoc
// @Summary Calcular edad humana equivalente
// @Description Acepta dogAge (años, fraccional) o birthday (YYYY-MM-DD / RFC3339); birthday gana si vienen ambos.
// @Tags calculator
// @Accept json
// @Produce json
// @Param payload body calculateRequest true "Edad o fecha de nacimiento + tamaño"
// @Success 200 {object} calculateResponse
// @Failure 400 {object} errorResponse
// @Router /api/calculate [post]
func calculatePostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req calculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		respond(w, r, svc, Input{DogAge: req.DogAge, Birthday: req.Birthday, Size: req.Size})
	}
}

// calculateGetHandler godoc
// @Summary Calcular edad humana (query string)
// @Tags calculator
// @Produce json
// @Param age query number false "Edad del perro en años"
// @Param birthday query string false "Fecha de nacimiento"
// @Param size query string true "small|medium|large"
// @Success 200 {object} calculateResponse
// @Failure 400 {object} errorResponse
// @Router /api/calculate [get]
func calculateGetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		in := Input{Birthday: q.Get("birthday"), Size: q.Get("size")}

		if raw := strings.TrimSpace(q.Get("age")); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "age must be a number"})
				return
			}
			in.DogAge = &v
		}
		respond(w, r, svc, in)
	}
}

func respond(w http.ResponseWriter, r *http.Request, svc *Service, in Input) {
	c, err := svc.Calculate(r.Context(), in)
	if err != nil {
		if IsInputError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{
		HumanAge:    c.HumanAge,
		Description: c.Description,
		LifeStage:   c.LifeStage,
		DogAge:      c.DogAge,
		Size:        c.Size,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
