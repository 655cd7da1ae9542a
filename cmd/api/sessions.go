package main

import (
	"context"

	"dog-years/internal/adapters/auth/session"
	mem "dog-years/internal/adapters/storage/memory"
	pg "dog-years/internal/adapters/storage/postgres"
	"dog-years/internal/ports/auth"

	"github.com/spf13/cobra"
)

func sessionsCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Deletes expired sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			var store auth.SessionStore = mem.NewSessionStore()
			if db != nil {
				store = pg.NewSessionStore(db)
			}

			m := session.NewManager(store, session.Config{
				Secret: a.cfg.Session.Secret,
				TTL:    a.cfg.Session.TTL,
			})
			n, err := m.PurgeExpired(ctx)
			if err != nil {
				return err
			}
			a.log.Info("expired sessions purged", map[string]any{"count": n})
			cmd.Printf("purged %d sessions\n", n)
			return nil
		},
	})

	return cmd
}
