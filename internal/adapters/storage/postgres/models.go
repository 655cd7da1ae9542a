package postgres

import (
	"database/sql"
	"time"

	"dog-years/internal/domain/posts"
	"dog-years/internal/domain/settings"
	"dog-years/internal/domain/testimonials"
	"dog-years/internal/domain/users"
	"dog-years/internal/ports/auth"
)

const (
	usersTable        = "users"
	sessionsTable     = "sessions"
	postsTable        = "posts"
	categoriesTable   = "categories"
	testimonialsTable = "testimonials"
	settingsTable     = "settings"
)

type pgUser struct {
	ID           string    `db:"id"            goqu:"skipupdate"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipupdate"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (p pgUser) toDomain() users.User {
	return users.User{
		ID:           p.ID,
		Username:     p.Username,
		Email:        p.Email,
		Role:         users.Role(p.Role),
		PasswordHash: p.PasswordHash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func pgUserFromDomain(u users.User) pgUser {
	return pgUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type pgSession struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (p pgSession) toDomain() auth.Session {
	return auth.Session{
		ID:        p.ID,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		ExpiresAt: p.ExpiresAt,
	}
}

type pgPost struct {
	ID              int64          `db:"id"               goqu:"skipinsert,skipupdate"`
	Title           string         `db:"title"`
	Slug            string         `db:"slug"`
	Content         string         `db:"content"`
	Excerpt         string         `db:"excerpt"`
	Status          string         `db:"status"`
	Type            string         `db:"type"`
	FeaturedImage   string         `db:"featured_image"`
	MetaTitle       string         `db:"meta_title"`
	MetaDescription string         `db:"meta_description"`
	AuthorID        sql.NullString `db:"author_id"        goqu:"skipupdate"`
	CreatedAt       time.Time      `db:"created_at"       goqu:"skipupdate"`
	UpdatedAt       time.Time      `db:"updated_at"`
	PublishedAt     sql.NullTime   `db:"published_at"`
}

func (p pgPost) toDomain() posts.Post {
	out := posts.Post{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		Status:          posts.Status(p.Status),
		Type:            posts.Type(p.Type),
		FeaturedImage:   p.FeaturedImage,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		AuthorID:        p.AuthorID.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.PublishedAt.Valid {
		t := p.PublishedAt.Time
		out.PublishedAt = &t
	}
	return out
}

func pgPostFromDomain(p posts.Post) pgPost {
	out := pgPost{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		Status:          string(p.Status),
		Type:            string(p.Type),
		FeaturedImage:   p.FeaturedImage,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		AuthorID:        sql.NullString{String: p.AuthorID, Valid: p.AuthorID != ""},
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.PublishedAt != nil {
		out.PublishedAt = sql.NullTime{Time: *p.PublishedAt, Valid: true}
	}
	return out
}

type pgCategory struct {
	ID          int64     `db:"id"          goqu:"skipinsert,skipupdate"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"  goqu:"skipupdate"`
}

func (p pgCategory) toDomain() posts.Category {
	return posts.Category{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

type pgTestimonial struct {
	ID          int64     `db:"id"           goqu:"skipinsert,skipupdate"`
	Name        string    `db:"name"`
	DogName     string    `db:"dog_name"`
	DogAge      string    `db:"dog_age"`
	Status      string    `db:"status"`
	StatusColor string    `db:"status_color"`
	Image       string    `db:"image"`
	Quote       string    `db:"quote"`
	IsActive    bool      `db:"is_active"`
	SortOrder   int       `db:"sort_order"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipupdate"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (p pgTestimonial) toDomain() testimonials.Testimonial {
	return testimonials.Testimonial{
		ID:          p.ID,
		Name:        p.Name,
		DogName:     p.DogName,
		DogAge:      p.DogAge,
		Status:      p.Status,
		StatusColor: p.StatusColor,
		Image:       p.Image,
		Quote:       p.Quote,
		IsActive:    p.IsActive,
		Order:       p.SortOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func pgTestimonialFromDomain(t testimonials.Testimonial) pgTestimonial {
	return pgTestimonial{
		ID:          t.ID,
		Name:        t.Name,
		DogName:     t.DogName,
		DogAge:      t.DogAge,
		Status:      t.Status,
		StatusColor: t.StatusColor,
		Image:       t.Image,
		Quote:       t.Quote,
		IsActive:    t.IsActive,
		SortOrder:   t.Order,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type pgSetting struct {
	ID        int64     `db:"id"         goqu:"skipinsert,skipupdate"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	Type      string    `db:"type"`
	Group     string    `db:"group_name"`
	CreatedAt time.Time `db:"created_at" goqu:"skipupdate"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p pgSetting) toDomain() settings.Setting {
	return settings.Setting{
		ID:        p.ID,
		Key:       p.Key,
		Value:     p.Value,
		Type:      settings.Type(p.Type),
		Group:     settings.Group(p.Group),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
