package posts

import "context"

type Repository interface {
	// Create asigna ID y devuelve el post guardado.
	Create(ctx context.Context, p Post) (Post, error)
	Update(ctx context.Context, p Post) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Post, error)
	GetBySlug(ctx context.Context, slug string) (Post, error)
	// List ordena por created_at desc.
	List(ctx context.Context, filter ListFilter) ([]Post, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c Category) (Category, error)
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Category, error)
	// List ordena por nombre.
	List(ctx context.Context) ([]Category, error)
}
