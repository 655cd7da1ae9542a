package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrConflict           = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfDelete         = errors.New("cannot delete your own account")
)

const minPasswordLen = 6

type Service struct {
	repo Repository
	now  func() time.Time
	cost int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		cost: bcryptCost,
	}
}

type CreateInput struct {
	Username  string
	Password  string
	Email     string
	Role      Role
	FirstName string
	LastName  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" || !validEmail(email) || len(in.Password) < minPasswordLen {
		return User{}, ErrInvalidInput
	}

	role := in.Role
	if role == "" {
		role = RoleAdmin
	}
	if !role.Valid() {
		return User{}, ErrInvalidInput
	}

	if err := s.ensureUnique(ctx, "", username, email); err != nil {
		return User{}, err
	}

	hash, err := hashPassword(in.Password, s.cost)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Username  *string
	Password  *string
	Email     *string
	Role      *Role
	FirstName *string
	LastName  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.Username != nil {
		v := strings.TrimSpace(*in.Username)
		if v == "" {
			return User{}, ErrInvalidInput
		}
		u.Username = v
	}
	if in.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Email))
		if !validEmail(v) {
			return User{}, ErrInvalidInput
		}
		u.Email = v
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return User{}, ErrInvalidInput
		}
		u.Role = *in.Role
	}
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return User{}, ErrInvalidInput
		}
		hash, err := hashPassword(*in.Password, s.cost)
		if err != nil {
			return User{}, err
		}
		u.PasswordHash = hash
	}

	if err := s.ensureUnique(ctx, u.ID, u.Username, u.Email); err != nil {
		return User{}, err
	}

	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Delete impide que un admin borre su propia cuenta.
func (s *Service) Delete(ctx context.Context, id, actorUserID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if id == strings.TrimSpace(actorUserID) {
		return ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Authenticate no distingue "no existe" de "password incorrecto".
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !verifyPassword(password, u.PasswordHash) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureDefaultAdmin crea el admin inicial si el username no existe.
// Devuelve true si lo creó.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, username, password, email string) (bool, error) {
	_, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	_, err = s.Create(ctx, CreateInput{
		Username:  username,
		Password:  password,
		Email:     email,
		Role:      RoleAdmin,
		FirstName: "Admin",
		LastName:  "User",
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) ensureUnique(ctx context.Context, selfID, username, email string) error {
	if u, err := s.repo.GetByUsername(ctx, username); err == nil && u.ID != selfID {
		return ErrConflict
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if u, err := s.repo.GetByEmail(ctx, email); err == nil && u.ID != selfID {
		return ErrConflict
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
