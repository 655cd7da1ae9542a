package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-years/internal/domain/users"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type UsersRepo struct {
	db *goqu.Database
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: builder(db)}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.Insert(usersTable).Rows(pgUserFromDomain(u)).Executor().ExecContext(ctx)
	if isUniqueViolation(err) {
		return users.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("could not insert user into pg: %w", err)
	}
	return nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.Update(usersTable).
		Set(pgUserFromDomain(u)).
		Where(goqu.I("id").Eq(u.ID)).
		Executor().ExecContext(ctx)
	if isUniqueViolation(err) {
		return users.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("could not update user in pg: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.Delete(usersTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete user in pg: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getOne(ctx, goqu.I("id").Eq(strings.TrimSpace(id)))
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.getOne(ctx, goqu.Func("lower", goqu.I("username")).Eq(strings.ToLower(strings.TrimSpace(username))))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, goqu.Func("lower", goqu.I("email")).Eq(strings.ToLower(strings.TrimSpace(email))))
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	var rows []pgUser
	if err := r.db.From(usersTable).
		Order(goqu.I("created_at").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list users from pg: %w", err)
	}

	out := make([]users.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UsersRepo) getOne(ctx context.Context, where exp.Expression) (users.User, error) {
	var row pgUser
	found, err := r.db.From(usersTable).Where(where).ScanStructContext(ctx, &row)
	if err != nil {
		return users.User{}, fmt.Errorf("could not get user from pg: %w", err)
	}
	if !found {
		return users.User{}, users.ErrNotFound
	}
	return row.toDomain(), nil
}
