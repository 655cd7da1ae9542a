package testimonials

import "context"

type Repository interface {
	Create(ctx context.Context, t Testimonial) (Testimonial, error)
	Update(ctx context.Context, t Testimonial) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Testimonial, error)
	// List ordena por Order asc y luego created_at desc.
	List(ctx context.Context, activeOnly bool) ([]Testimonial, error)
}
