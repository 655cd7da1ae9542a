package memory

import (
	"context"
	"sort"
	"sync"

	"dog-years/internal/domain/posts"
)

type postRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]posts.Post
}

func NewPostRepo() posts.Repository {
	return &postRepo{
		byID: make(map[int64]posts.Post),
	}
}

func (r *postRepo) Create(ctx context.Context, p posts.Post) (posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slugTaken(p.Slug, 0) {
		return posts.Post{}, posts.ErrConflict
	}
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *postRepo) Update(ctx context.Context, p posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return posts.ErrNotFound
	}
	if r.slugTaken(p.Slug, p.ID) {
		return posts.ErrConflict
	}
	r.byID[p.ID] = p
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return posts.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return posts.Post{}, posts.ErrNotFound
	}
	return p, nil
}

func (r *postRepo) GetBySlug(ctx context.Context, slug string) (posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if p.Slug == slug {
			return p, nil
		}
	}
	return posts.Post{}, posts.ErrNotFound
}

func (r *postRepo) List(ctx context.Context, filter posts.ListFilter) ([]posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]posts.Post, 0)
	for _, p := range r.byID {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		out = append(out, p)
	}

	// created_at desc; a igual fecha, id desc
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *postRepo) slugTaken(slug string, selfID int64) bool {
	for id, p := range r.byID {
		if id != selfID && p.Slug == slug {
			return true
		}
	}
	return false
}

type categoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]posts.Category
}

func NewCategoryRepo() posts.CategoryRepository {
	return &categoryRepo{
		byID: make(map[int64]posts.Category),
	}
}

func (r *categoryRepo) Create(ctx context.Context, c posts.Category) (posts.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.byID {
		if other.Slug == c.Slug {
			return posts.Category{}, posts.ErrConflict
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c, nil
}

func (r *categoryRepo) Update(ctx context.Context, c posts.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return posts.ErrNotFound
	}
	for id, other := range r.byID {
		if id != c.ID && other.Slug == c.Slug {
			return posts.ErrConflict
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return posts.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (posts.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return posts.Category{}, posts.ErrNotFound
	}
	return c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]posts.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]posts.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
