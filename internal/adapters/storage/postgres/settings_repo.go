package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dog-years/internal/domain/settings"

	"github.com/doug-martin/goqu/v9"
)

type SettingsRepo struct {
	db *goqu.Database
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: builder(db)}
}

// Upsert usa ON CONFLICT (key); created_at se conserva.
func (r *SettingsRepo) Upsert(ctx context.Context, s settings.Setting) (settings.Setting, error) {
	var row pgSetting
	_, err := r.db.Insert(settingsTable).
		Rows(pgSetting{
			Key:       s.Key,
			Value:     s.Value,
			Type:      string(s.Type),
			Group:     string(s.Group),
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      goqu.I("EXCLUDED.value"),
			"type":       goqu.I("EXCLUDED.type"),
			"group_name": goqu.I("EXCLUDED.group_name"),
			"updated_at": goqu.I("EXCLUDED.updated_at"),
		})).
		Returning(&pgSetting{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return settings.Setting{}, fmt.Errorf("could not upsert setting into pg: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SettingsRepo) GetByKey(ctx context.Context, key string) (settings.Setting, error) {
	var row pgSetting
	found, err := r.db.From(settingsTable).Where(goqu.I("key").Eq(key)).ScanStructContext(ctx, &row)
	if err != nil {
		return settings.Setting{}, fmt.Errorf("could not get setting from pg: %w", err)
	}
	if !found {
		return settings.Setting{}, settings.ErrNotFound
	}
	return row.toDomain(), nil
}

func (r *SettingsRepo) List(ctx context.Context, group settings.Group) ([]settings.Setting, error) {
	q := r.db.From(settingsTable).Order(goqu.I("key").Asc())
	if group != "" {
		q = q.Where(goqu.I("group_name").Eq(string(group)))
	}

	var rows []pgSetting
	if err := q.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list settings from pg: %w", err)
	}

	out := make([]settings.Setting, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
