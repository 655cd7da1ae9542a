package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"dog-years/internal/adapters/auth/session"
	mem "dog-years/internal/adapters/storage/memory"
	pg "dog-years/internal/adapters/storage/postgres"
	_ "dog-years/internal/docs"
	"dog-years/internal/domain/dogage"
	"dog-years/internal/domain/posts"
	"dog-years/internal/domain/settings"
	"dog-years/internal/domain/testimonials"
	"dog-years/internal/domain/users"
	"dog-years/internal/middleware"
	"dog-years/internal/platform/config"
	"dog-years/internal/platform/logger"
	"dog-years/internal/platform/metrics"
	"dog-years/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: reemplaza al session.Manager para verificar tokens (tests).
	AuthVerifier auth.AuthVerifier
}

// Router es el handler HTTP más las piezas que serve necesita para sus jobs.
type Router struct {
	http.Handler

	Sessions     *session.Manager
	LoginLimiter *middleware.RateLimiter
}

type repos struct {
	users        users.Repository
	sessions     auth.SessionStore
	posts        posts.Repository
	categories   posts.CategoryRepository
	testimonials testimonials.Repository
	settings     settings.Repository
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			users:        pg.NewUsersRepo(db),
			sessions:     pg.NewSessionStore(db),
			posts:        pg.NewPostsRepo(db),
			categories:   pg.NewCategoriesRepo(db),
			testimonials: pg.NewTestimonialsRepo(db),
			settings:     pg.NewSettingsRepo(db),
		}
	}
	return repos{
		users:        mem.NewUserRepo(),
		sessions:     mem.NewSessionStore(),
		posts:        mem.NewPostRepo(),
		categories:   mem.NewCategoryRepo(),
		testimonials: mem.NewTestimonialRepo(),
		settings:     mem.NewSettingRepo(),
	}
}

func NewRouter(ctx context.Context, opts Options) (*Router, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("router: config required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	rp := newRepos(opts.DB)

	sessions := session.NewManager(rp.sessions, session.Config{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
	})
	var verifier auth.AuthVerifier = sessions
	if opts.AuthVerifier != nil {
		verifier = opts.AuthVerifier
	}

	// Services por módulo
	usersSvc := users.NewService(rp.users)
	calcSvc := dogage.NewService(metrics.Calculator{})
	postsSvc := posts.NewService(rp.posts, rp.categories)
	testimonialsSvc := testimonials.NewService(rp.testimonials)
	settingsSvc := settings.NewService(rp.settings)

	created, err := usersSvc.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email)
	if err != nil {
		return nil, fmt.Errorf("could not bootstrap admin user: %w", err)
	}
	if created {
		log.Warn("default admin user created; change its password", map[string]any{"username": cfg.Admin.Username})
	}

	loginLimiter := middleware.NewRateLimiter(cfg.Login.RatePerSecond, cfg.Login.Burst)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if cfg.HTTP.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Instrument)

	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.HTTP.MetricsPath != "" {
		r.Handle(cfg.HTTP.MetricsPath, metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	dogage.RegisterRoutes(r, calcSvc)
	users.RegisterRoutes(r, usersSvc, sessions, users.CookieOptions{Secure: cfg.Session.SecureCookie}, loginLimiter.Handler)
	posts.RegisterRoutes(r, postsSvc)
	testimonials.RegisterRoutes(r, testimonialsSvc)
	settings.RegisterRoutes(r, settingsSvc)

	return &Router{
		Handler:      r,
		Sessions:     sessions,
		LoginLimiter: loginLimiter,
	}, nil
}
