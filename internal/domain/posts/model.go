package posts

import "time"

// Status del post.
// @Enum draft, published, trash
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusTrash     Status = "trash"
)

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusTrash
}

// Type distingue artículos de páginas estáticas.
// @Enum post, page
type Type string

const (
	TypePost Type = "post"
	TypePage Type = "page"
)

func (t Type) Valid() bool {
	return t == TypePost || t == TypePage
}

type Post struct {
	ID int64

	Title   string
	Slug    string
	Content string
	Excerpt string

	Status Status
	Type   Type

	FeaturedImage   string
	MetaTitle       string
	MetaDescription string

	AuthorID string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// ListFilter: campos vacíos = sin filtro.
type ListFilter struct {
	Status Status
	Type   Type
}
