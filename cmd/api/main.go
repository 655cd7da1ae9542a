// Command dog-years levanta la API (calculadora + panel de contenido) y expone
// subcomandos de mantenimiento: migrate, calc, sessions.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	pg "dog-years/internal/adapters/storage/postgres"
	"dog-years/internal/platform/config"
	"dog-years/internal/platform/logger"

	"github.com/spf13/cobra"
)

// app se completa en PersistentPreRunE, cuando cobra ya parseó --config.
type app struct {
	configPath string
	cfg        *config.Config
	log        logger.Logger
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	return nil
}

// openDB abre Postgres si hay DSN; nil sin error => modo in-memory.
func (a *app) openDB() (*sql.DB, func(), error) {
	if a.cfg.Database.DSN == "" {
		return nil, func() {}, nil
	}
	db, err := pg.Open(a.cfg.Database.DSN, pg.PoolOptions{
		MaxOpenConnections: a.cfg.Database.MaxOpenConnections,
		MaxIdleConnections: a.cfg.Database.MaxIdleConnections,
		ConnMaxLifetime:    a.cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    a.cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not open postgres: %w", err)
	}
	return db, func() {
		a.log.Info("closing postgres client...", nil)
		if err := db.Close(); err != nil {
			a.log.Warn("could not close postgres connection", map[string]any{"err": err})
		}
	}, nil
}

func newRootCommand(ctx context.Context) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "dog-years",
		Short:             "Dog age calculator API and content admin",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	serve := serveCommand(ctx, a)
	rootCmd.RunE = serve.RunE

	rootCmd.AddCommand(
		serve,
		migrateCommand(ctx, a),
		calcCommand(ctx, a),
		sessionsCommand(ctx, a),
	)
	return rootCmd
}

func main() {
	ctx := context.Background()

	err := newRootCommand(ctx).ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
