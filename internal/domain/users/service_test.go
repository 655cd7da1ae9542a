package users

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testRepo struct {
	byID map[string]User
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func newTestService() *Service {
	svc := NewService(&testRepo{byID: map[string]User{}})
	svc.cost = bcrypt.MinCost
	svc.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_HashesAndNormalizes(t *testing.T) {
	svc := newTestService()

	u, err := svc.Create(context.Background(), CreateInput{
		Username: " vet ",
		Password: "secret1",
		Email:    "Vet@DogYears.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "vet", u.Username)
	assert.Equal(t, "vet@dogyears.com", u.Email)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.True(t, verifyPassword("secret1", u.PasswordHash))
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	bad := []CreateInput{
		{Username: "", Password: "secret1", Email: "a@b.c"},
		{Username: "a", Password: "123", Email: "a@b.c"},
		{Username: "a", Password: "secret1", Email: "nope"},
		{Username: "a", Password: "secret1", Email: "a@b.c", Role: "owner"},
	}
	for _, in := range bad {
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input=%+v", in)
	}
}

func TestCreate_Conflicts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Username: "ana", Password: "secret1", Email: "ana@x.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{Username: "ANA", Password: "secret1", Email: "other@x.com"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(ctx, CreateInput{Username: "otra", Password: "secret1", Email: "ANA@x.com"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Username: "ana", Password: "secret1", Email: "ana@x.com", Role: RoleEditor})
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "ana", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = svc.Authenticate(ctx, "ana", "wrong!!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "ghost", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PasswordAndRole(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "ana", Password: "secret1", Email: "ana@x.com"})
	require.NoError(t, err)

	pw, role := "newsecret", RoleEditor
	u, err = svc.Update(ctx, u.ID, UpdateInput{Password: &pw, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, u.Role)

	_, err = svc.Authenticate(ctx, "ana", "newsecret")
	require.NoError(t, err)

	short := "123"
	_, err = svc.Update(ctx, u.ID, UpdateInput{Password: &short})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, "missing", UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_RejectsSelf(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "ana", Password: "secret1", Email: "ana@x.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, u.ID, u.ID), ErrSelfDelete)
	require.NoError(t, svc.Delete(ctx, u.ID, "someone-else"))
	assert.ErrorIs(t, svc.Delete(ctx, u.ID, "someone-else"), ErrNotFound)
}

func TestEnsureDefaultAdmin_Idempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.EnsureDefaultAdmin(ctx, "admin", "admin123", "admin@dogyears.com")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureDefaultAdmin(ctx, "admin", "admin123", "admin@dogyears.com")
	require.NoError(t, err)
	assert.False(t, created)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, RoleAdmin, list[0].Role)
}
