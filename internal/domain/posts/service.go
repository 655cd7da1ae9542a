package posts

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("slug already in use")
)

type Service struct {
	repo       Repository
	categories CategoryRepository
	now        func() time.Time
}

func NewService(repo Repository, categories CategoryRepository) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		now:        time.Now,
	}
}

type CreateInput struct {
	Title           string
	Slug            string
	Content         string
	Excerpt         string
	Status          Status
	Type            Type
	FeaturedImage   string
	MetaTitle       string
	MetaDescription string
}

func (s *Service) Create(ctx context.Context, authorID string, in CreateInput) (Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" {
		return Post{}, ErrInvalidInput
	}

	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return Post{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusDraft
	}
	typ := in.Type
	if typ == "" {
		typ = TypePost
	}
	if !status.Valid() || !typ.Valid() {
		return Post{}, ErrInvalidInput
	}

	if err := s.ensureSlugFree(ctx, 0, slug); err != nil {
		return Post{}, err
	}

	now := s.now()
	p := Post{
		Title:           title,
		Slug:            slug,
		Content:         in.Content,
		Excerpt:         strings.TrimSpace(in.Excerpt),
		Status:          status,
		Type:            typ,
		FeaturedImage:   strings.TrimSpace(in.FeaturedImage),
		MetaTitle:       strings.TrimSpace(in.MetaTitle),
		MetaDescription: strings.TrimSpace(in.MetaDescription),
		AuthorID:        strings.TrimSpace(authorID),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if status == StatusPublished {
		p.PublishedAt = &now
	}

	return s.repo.Create(ctx, p)
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Title           *string
	Slug            *string
	Content         *string
	Excerpt         *string
	Status          *Status
	Type            *Type
	FeaturedImage   *string
	MetaTitle       *string
	MetaDescription *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}

	if in.Title != nil {
		v := strings.TrimSpace(*in.Title)
		if v == "" {
			return Post{}, ErrInvalidInput
		}
		p.Title = v
	}
	if in.Slug != nil {
		v := Slugify(*in.Slug)
		if v == "" {
			return Post{}, ErrInvalidInput
		}
		if err := s.ensureSlugFree(ctx, p.ID, v); err != nil {
			return Post{}, err
		}
		p.Slug = v
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return Post{}, ErrInvalidInput
		}
		p.Content = *in.Content
	}
	if in.Excerpt != nil {
		p.Excerpt = strings.TrimSpace(*in.Excerpt)
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return Post{}, ErrInvalidInput
		}
		p.Type = *in.Type
	}
	if in.FeaturedImage != nil {
		p.FeaturedImage = strings.TrimSpace(*in.FeaturedImage)
	}
	if in.MetaTitle != nil {
		p.MetaTitle = strings.TrimSpace(*in.MetaTitle)
	}
	if in.MetaDescription != nil {
		p.MetaDescription = strings.TrimSpace(*in.MetaDescription)
	}

	now := s.now()
	if in.Status != nil {
		if !in.Status.Valid() {
			return Post{}, ErrInvalidInput
		}
		// PublishedAt se fija la primera vez; despublicar no lo borra.
		if *in.Status == StatusPublished && p.PublishedAt == nil {
			p.PublishedAt = &now
		}
		p.Status = *in.Status
	}

	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Post, error) {
	if id <= 0 {
		return Post{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Post, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidInput
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, filter)
}

// ListPublished es lo que ve el sitio público.
func (s *Service) ListPublished(ctx context.Context) ([]Post, error) {
	return s.repo.List(ctx, ListFilter{Status: StatusPublished, Type: TypePost})
}

// GetPublishedBySlug oculta drafts/trash como not found.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return Post{}, err
	}
	if p.Status != StatusPublished {
		return Post{}, ErrNotFound
	}
	return p, nil
}

type CategoryInput struct {
	Name        string
	Slug        string
	Description string
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Category{}, ErrInvalidInput
	}
	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return Category{}, ErrInvalidInput
	}

	return s.categories.Create(ctx, Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   s.now(),
	})
}

type CategoryUpdate struct {
	Name        *string
	Slug        *string
	Description *string
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, in CategoryUpdate) (Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return Category{}, err
	}
	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Category{}, ErrInvalidInput
		}
		c.Name = v
	}
	if in.Slug != nil {
		v := Slugify(*in.Slug)
		if v == "" {
			return Category{}, ErrInvalidInput
		}
		c.Slug = v
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.categories.Update(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) ensureSlugFree(ctx context.Context, selfID int64, slug string) error {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err == nil && existing.ID != selfID {
		return ErrConflict
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
