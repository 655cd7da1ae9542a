package main

import (
	"context"
	"errors"

	pg "dog-years/internal/adapters/storage/postgres"

	"github.com/spf13/cobra"
)

func migrateCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := a.openDB()
			if err != nil {
				return err
			}
			if db == nil {
				return errors.New("DB_DSN is required to migrate")
			}
			defer closeDB()

			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			version, err := pg.MigrationVersion(ctx, db)
			if err != nil {
				return err
			}
			a.log.Info("database migrated", map[string]any{"version": version})
			return nil
		},
	}
}
