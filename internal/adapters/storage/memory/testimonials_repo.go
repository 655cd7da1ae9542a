package memory

import (
	"context"
	"sort"
	"sync"

	"dog-years/internal/domain/testimonials"
)

type testimonialRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]testimonials.Testimonial
}

func NewTestimonialRepo() testimonials.Repository {
	return &testimonialRepo{
		byID: make(map[int64]testimonials.Testimonial),
	}
}

func (r *testimonialRepo) Create(ctx context.Context, t testimonials.Testimonial) (testimonials.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	r.byID[t.ID] = t
	return t, nil
}

func (r *testimonialRepo) Update(ctx context.Context, t testimonials.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return testimonials.ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testimonialRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return testimonials.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testimonialRepo) GetByID(ctx context.Context, id int64) (testimonials.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return testimonials.Testimonial{}, testimonials.ErrNotFound
	}
	return t, nil
}

func (r *testimonialRepo) List(ctx context.Context, activeOnly bool) ([]testimonials.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]testimonials.Testimonial, 0)
	for _, t := range r.byID {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
