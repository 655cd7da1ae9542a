package posts

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
	r.Route("/api/admin/posts", func(pr chi.Router) {
		pr.Use(middleware.RequireAuth)

		pr.Get("/", listPostsHandler(svc))
		pr.Post("/", createPostHandler(svc))
		pr.Get("/{postID}", getPostHandler(svc))
		pr.Put("/{postID}", updatePostHandler(svc))
		pr.Delete("/{postID}", deletePostHandler(svc))
	})

	r.Route("/api/admin/categories", func(cr chi.Router) {
		cr.Use(middleware.RequireAuth)

		cr.Get("/", listCategoriesHandler(svc))
		cr.Post("/", createCategoryHandler(svc))
		cr.Put("/{categoryID}", updateCategoryHandler(svc))
		cr.Delete("/{categoryID}", deleteCategoryHandler(svc))
	})

	// Sitio público
	r.Get("/api/posts", publicListHandler(svc))
	r.Get("/api/posts/{slug}", publicGetHandler(svc))
}

type postRequest struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	Status          *Status `json:"status"`
	Type            *Type   `json:"type"`
	FeaturedImage   *string `json:"featuredImage"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
}

type postResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Status          Status     `json:"status"`
	Type            Type       `json:"type"`
	FeaturedImage   string     `json:"featuredImage,omitempty"`
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	AuthorID        string     `json:"authorId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

type categoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// listPostsHandler godoc
// @Summary Listar posts (panel)
// @Tags posts
// @Produce json
// @Param status query string false "draft|published|trash"
// @Param type query string false "post|page"
// @Success 200 {array} postResponse
// @Failure 401 {string} string "authentication required"
// @Router /api/admin/posts [get]
func listPostsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Status: Status(strings.TrimSpace(q.Get("status"))),
			Type:   Type(strings.TrimSpace(q.Get("type"))),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPostResponses(items))
	}
}

// createPostHandler godoc
// @Summary Crear post
// @Description El autor es el usuario autenticado. Si no se manda slug se deriva del título.
// @Tags posts
// @Accept json
// @Produce json
// @Param payload body postRequest true "Post"
// @Success 201 {object} postResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "slug already in use"
// @Router /api/admin/posts [post]
func createPostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req postRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Title:           deref(req.Title),
			Slug:            deref(req.Slug),
			Content:         deref(req.Content),
			Excerpt:         deref(req.Excerpt),
			FeaturedImage:   deref(req.FeaturedImage),
			MetaTitle:       deref(req.MetaTitle),
			MetaDescription: deref(req.MetaDescription),
		}
		if req.Status != nil {
			in.Status = *req.Status
		}
		if req.Type != nil {
			in.Type = *req.Type
		}

		p, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPostResponse(p))
	}
}

func getPostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, chi.URLParam(r, "postID"))
		if !ok {
			return
		}
		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPostResponse(p))
	}
}

func updatePostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, chi.URLParam(r, "postID"))
		if !ok {
			return
		}

		var req postRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Title:           req.Title,
			Slug:            req.Slug,
			Content:         req.Content,
			Excerpt:         req.Excerpt,
			Status:          req.Status,
			Type:            req.Type,
			FeaturedImage:   req.FeaturedImage,
			MetaTitle:       req.MetaTitle,
			MetaDescription: req.MetaDescription,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPostResponse(p))
	}
}

func deletePostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, chi.URLParam(r, "postID"))
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func listCategoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListCategories(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		out := make([]categoryResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCategoryResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		c, err := svc.CreateCategory(r.Context(), CategoryInput{
			Name:        deref(req.Name),
			Slug:        deref(req.Slug),
			Description: deref(req.Description),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toCategoryResponse(c))
	}
}

func updateCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, chi.URLParam(r, "categoryID"))
		if !ok {
			return
		}
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		c, err := svc.UpdateCategory(r.Context(), id, CategoryUpdate{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCategoryResponse(c))
	}
}

func deleteCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, chi.URLParam(r, "categoryID"))
		if !ok {
			return
		}
		if err := svc.DeleteCategory(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// publicListHandler godoc
// @Summary Posts publicados
// @Tags public
// @Produce json
// @Success 200 {array} postResponse
// @Router /api/posts [get]
func publicListHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPublished(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPostResponses(items))
	}
}

func publicGetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPostResponse(p))
	}
}

func parseID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
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
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPostResponses(items []Post) []postResponse {
	out := make([]postResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPostResponse(p))
	}
	return out
}

func toPostResponse(p Post) postResponse {
	return postResponse{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		Status:          p.Status,
		Type:            p.Type,
		FeaturedImage:   p.FeaturedImage,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		AuthorID:        p.AuthorID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		PublishedAt:     p.PublishedAt,
	}
}

func toCategoryResponse(c Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
