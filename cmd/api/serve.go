package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	pg "dog-years/internal/adapters/storage/postgres"
	"dog-years/internal/platform/metrics"
	"dog-years/internal/router"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func serveCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API and the session purge job",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, closeDB, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			if db != nil {
				if err := pg.Migrate(ctx, db); err != nil {
					return err
				}
			} else {
				a.log.Warn("DB_DSN not set, using in-memory storage", nil)
			}

			rt, err := router.NewRouter(ctx, router.Options{
				Config: a.cfg,
				Logger: a.log,
				DB:     db,
			})
			if err != nil {
				return err
			}

			stopJobs, err := startJobs(ctx, a, rt)
			if err != nil {
				return err
			}
			defer stopJobs()

			server := &http.Server{
				Addr:              a.cfg.HTTP.Addr,
				Handler:           rt,
				ReadTimeout:       a.cfg.HTTP.ReadTimeout,
				ReadHeaderTimeout: a.cfg.HTTP.ReadHeaderTimeout,
				WriteTimeout:      a.cfg.HTTP.WriteTimeout,
				IdleTimeout:       a.cfg.HTTP.IdleTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("starting webserver...", map[string]any{"addr": a.cfg.HTTP.Addr})
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
			case <-ctx.Done():
			}

			a.log.Info("stopping webserver...", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				a.log.Error("could not stop webserver", map[string]any{"err": err})
			}
			_ = a.log.Sync()
			return nil
		},
	}
}

// startJobs agenda la limpieza periódica de sesiones vencidas y del rate limiter de login.
func startJobs(ctx context.Context, a *app, rt *router.Router) (func(), error) {
	c := cron.New()

	_, err := c.AddFunc(a.cfg.Session.PurgeSchedule, func() {
		n, err := rt.Sessions.PurgeExpired(ctx)
		if err != nil {
			a.log.Error("could not purge expired sessions", map[string]any{"err": err})
			return
		}
		metrics.SessionsPurged(n)
		dropped := rt.LoginLimiter.Cleanup()
		a.log.Info("session purge done", map[string]any{"sessions": n, "limiters": dropped})
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return func() {
		<-c.Stop().Done()
	}, nil
}
