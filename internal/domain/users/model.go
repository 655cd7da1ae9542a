package users

import "time"

// Role define el nivel de acceso al panel.
// @Enum admin, editor
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User es un operador del panel de administración.
type User struct {
	ID       string
	Username string
	Email    string
	Role     Role

	// PasswordHash es bcrypt; nunca se serializa hacia afuera.
	PasswordHash string

	FirstName string
	LastName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
