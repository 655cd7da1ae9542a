package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dog-years/internal/domain/testimonials"

	"github.com/doug-martin/goqu/v9"
)

type TestimonialsRepo struct {
	db *goqu.Database
}

func NewTestimonialsRepo(db *sql.DB) *TestimonialsRepo {
	return &TestimonialsRepo{db: builder(db)}
}

func (r *TestimonialsRepo) Create(ctx context.Context, t testimonials.Testimonial) (testimonials.Testimonial, error) {
	var id int64
	if _, err := r.db.Insert(testimonialsTable).
		Rows(pgTestimonialFromDomain(t)).
		Returning("id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return testimonials.Testimonial{}, fmt.Errorf("could not insert testimonial into pg: %w", err)
	}
	t.ID = id
	return t, nil
}

func (r *TestimonialsRepo) Update(ctx context.Context, t testimonials.Testimonial) error {
	res, err := r.db.Update(testimonialsTable).
		Set(pgTestimonialFromDomain(t)).
		Where(goqu.I("id").Eq(t.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update testimonial in pg: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return testimonials.ErrNotFound
	}
	return nil
}

func (r *TestimonialsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Delete(testimonialsTable).Where(goqu.I("id").Eq(id)).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete testimonial in pg: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return testimonials.ErrNotFound
	}
	return nil
}

func (r *TestimonialsRepo) GetByID(ctx context.Context, id int64) (testimonials.Testimonial, error) {
	var row pgTestimonial
	found, err := r.db.From(testimonialsTable).Where(goqu.I("id").Eq(id)).ScanStructContext(ctx, &row)
	if err != nil {
		return testimonials.Testimonial{}, fmt.Errorf("could not get testimonial from pg: %w", err)
	}
	if !found {
		return testimonials.Testimonial{}, testimonials.ErrNotFound
	}
	return row.toDomain(), nil
}

func (r *TestimonialsRepo) List(ctx context.Context, activeOnly bool) ([]testimonials.Testimonial, error) {
	q := r.db.From(testimonialsTable).
		Order(goqu.I("sort_order").Asc(), goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if activeOnly {
		q = q.Where(goqu.I("is_active").IsTrue())
	}

	var rows []pgTestimonial
	if err := q.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list testimonials from pg: %w", err)
	}

	out := make([]testimonials.Testimonial, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
