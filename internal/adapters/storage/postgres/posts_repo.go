package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dog-years/internal/domain/posts"

	"github.com/doug-martin/goqu/v9"
)

type PostsRepo struct {
	db *goqu.Database
}

func NewPostsRepo(db *sql.DB) *PostsRepo {
	return &PostsRepo{db: builder(db)}
}

func (r *PostsRepo) Create(ctx context.Context, p posts.Post) (posts.Post, error) {
	var id int64
	_, err := r.db.Insert(postsTable).
		Rows(pgPostFromDomain(p)).
		Returning("id").
		Executor().ScanValContext(ctx, &id)
	if isUniqueViolation(err) {
		return posts.Post{}, posts.ErrConflict
	}
	if err != nil {
		return posts.Post{}, fmt.Errorf("could not insert post into pg: %w", err)
	}
	p.ID = id
	return p, nil
}

func (r *PostsRepo) Update(ctx context.Context, p posts.Post) error {
	res, err := r.db.Update(postsTable).
		Set(pgPostFromDomain(p)).
		Where(goqu.I("id").Eq(p.ID)).
		Executor().ExecContext(ctx)
	if isUniqueViolation(err) {
		return posts.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("could not update post in pg: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return posts.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Delete(postsTable).Where(goqu.I("id").Eq(id)).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete post in pg: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return posts.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) GetByID(ctx context.Context, id int64) (posts.Post, error) {
	return r.getOne(ctx, goqu.Ex{"id": id})
}

func (r *PostsRepo) GetBySlug(ctx context.Context, slug string) (posts.Post, error) {
	return r.getOne(ctx, goqu.Ex{"slug": slug})
}

// List arma el WHERE según los filtros presentes.
func (r *PostsRepo) List(ctx context.Context, filter posts.ListFilter) ([]posts.Post, error) {
	q := r.db.From(postsTable).Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if filter.Status != "" {
		q = q.Where(goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Type != "" {
		q = q.Where(goqu.I("type").Eq(string(filter.Type)))
	}

	var rows []pgPost
	if err := q.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list posts from pg: %w", err)
	}

	out := make([]posts.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PostsRepo) getOne(ctx context.Context, where goqu.Ex) (posts.Post, error) {
	var row pgPost
	found, err := r.db.From(postsTable).Where(where).ScanStructContext(ctx, &row)
	if err != nil {
		return posts.Post{}, fmt.Errorf("could not get post from pg: %w", err)
	}
	if !found {
		return posts.Post{}, posts.ErrNotFound
	}
	return row.toDomain(), nil
}

type CategoriesRepo struct {
	db *goqu.Database
}

func NewCategoriesRepo(db *sql.DB) *CategoriesRepo {
	return &CategoriesRepo{db: builder(db)}
}

func (r *CategoriesRepo) Create(ctx context.Context, c posts.Category) (posts.Category, error) {
	var id int64
	_, err := r.db.Insert(categoriesTable).
		Rows(pgCategory{Name: c.Name, Slug: c.Slug, Description: c.Description, CreatedAt: c.CreatedAt}).
		Returning("id").
		Executor().ScanValContext(ctx, &id)
	if isUniqueViolation(err) {
		return posts.Category{}, posts.ErrConflict
	}
	if err != nil {
		return posts.Category{}, fmt.Errorf("could not insert category into pg: %w", err)
	}
	c.ID = id
	return c, nil
}

func (r *CategoriesRepo) Update(ctx context.Context, c posts.Category) error {
	res, err := r.db.Update(categoriesTable).
		Set(goqu.Record{"name": c.Name, "slug": c.Slug, "description": c.Description}).
		Where(goqu.I("id").Eq(c.ID)).
		Executor().ExecContext(ctx)
	if isUniqueViolation(err) {
		return posts.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("could not update category in pg: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return posts.ErrNotFound
	}
	return nil
}

func (r *CategoriesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Delete(categoriesTable).Where(goqu.I("id").Eq(id)).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete category in pg: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return posts.ErrNotFound
	}
	return nil
}

func (r *CategoriesRepo) GetByID(ctx context.Context, id int64) (posts.Category, error) {
	var row pgCategory
	found, err := r.db.From(categoriesTable).Where(goqu.I("id").Eq(id)).ScanStructContext(ctx, &row)
	if err != nil {
		return posts.Category{}, fmt.Errorf("could not get category from pg: %w", err)
	}
	if !found {
		return posts.Category{}, posts.ErrNotFound
	}
	return row.toDomain(), nil
}

func (r *CategoriesRepo) List(ctx context.Context) ([]posts.Category, error) {
	var rows []pgCategory
	if err := r.db.From(categoriesTable).
		Order(goqu.I("name").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list categories from pg: %w", err)
	}

	out := make([]posts.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
