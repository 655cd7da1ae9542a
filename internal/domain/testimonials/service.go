package testimonials

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dog-years/internal/domain/dogage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("testimonial not found")
)

// "8 years", "2.5 yrs", "1 year old"
var yearsPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(?:years?|yrs?)\b`)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	DogName     string
	DogAge      string
	Status      string
	StatusColor string
	Image       string
	Quote       string
	// nil => activo
	IsActive *bool
	Order    int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Testimonial, error) {
	name := strings.TrimSpace(in.Name)
	dogName := strings.TrimSpace(in.DogName)
	quote := strings.TrimSpace(in.Quote)
	if name == "" || dogName == "" || quote == "" {
		return Testimonial{}, ErrInvalidInput
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.now()
	t := Testimonial{
		Name:        name,
		DogName:     dogName,
		DogAge:      strings.TrimSpace(in.DogAge),
		Status:      strings.TrimSpace(in.Status),
		StatusColor: strings.TrimSpace(in.StatusColor),
		Image:       strings.TrimSpace(in.Image),
		Quote:       quote,
		IsActive:    active,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Status == "" {
		t.Status = StatusFromDogAge(t.DogAge)
	}

	return s.repo.Create(ctx, t)
}

type UpdateInput struct {
	Name        *string
	DogName     *string
	DogAge      *string
	Status      *string
	StatusColor *string
	Image       *string
	Quote       *string
	IsActive    *bool
	Order       *int
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Testimonial, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Testimonial{}, err
	}

	for _, f := range []struct {
		src *string
		dst *string
	}{
		{in.Name, &t.Name},
		{in.DogName, &t.DogName},
		{in.Quote, &t.Quote},
	} {
		if f.src == nil {
			continue
		}
		v := strings.TrimSpace(*f.src)
		if v == "" {
			return Testimonial{}, ErrInvalidInput
		}
		*f.dst = v
	}

	if in.DogAge != nil {
		t.DogAge = strings.TrimSpace(*in.DogAge)
	}
	if in.Status != nil {
		t.Status = strings.TrimSpace(*in.Status)
	}
	if t.Status == "" {
		t.Status = StatusFromDogAge(t.DogAge)
	}
	if in.StatusColor != nil {
		t.StatusColor = strings.TrimSpace(*in.StatusColor)
	}
	if in.Image != nil {
		t.Image = strings.TrimSpace(*in.Image)
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if in.Order != nil {
		t.Order = *in.Order
	}

	t.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, t); err != nil {
		return Testimonial{}, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Testimonial, error) {
	return s.repo.List(ctx, false)
}

func (s *Service) ListActive(ctx context.Context) ([]Testimonial, error) {
	return s.repo.List(ctx, true)
}

// StatusFromDogAge deriva la etapa de vida cuando DogAge empieza con años.
// Devuelve "" si el texto no se puede interpretar.
func StatusFromDogAge(dogAge string) string {
	m := yearsPattern.FindStringSubmatch(strings.ToLower(dogAge))
	if m == nil {
		return ""
	}
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return ""
	}
	return dogage.LifeStage(years)
}
