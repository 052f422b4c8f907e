package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"timekeep/internal/domain/auth"
	"timekeep/internal/domain/notifications"
	"timekeep/internal/domain/payroll"
	"timekeep/internal/domain/users"
	"timekeep/internal/domain/worktime"
	"timekeep/internal/platform/config"
	"timekeep/internal/platform/crypto"
	"timekeep/internal/platform/db"
	"timekeep/internal/platform/email"
	"timekeep/internal/platform/jobs"
	"timekeep/internal/platform/metrics"
	"timekeep/internal/transport/http/api"
	authhandler "timekeep/internal/transport/http/handlers/auth"
	jobshandler "timekeep/internal/transport/http/handlers/jobs"
	notificationshandler "timekeep/internal/transport/http/handlers/notifications"
	payrollhandler "timekeep/internal/transport/http/handlers/payroll"
	usershandler "timekeep/internal/transport/http/handlers/users"
	worktimehandler "timekeep/internal/transport/http/handlers/worktime"
	"timekeep/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Jobs    *jobs.Service
	Metrics *metrics.Collector
}

// New connects to the database, runs migrations and seeding when enabled, and
// wires the full router. The caller owns the pool and shuts it down.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		migrationsDir := cfg.MigrationsDir
		if migrationsDir == "" {
			migrationsDir = "migrations"
		}
		if err := db.Migrate(ctx, pool, migrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	cryptoService, err := crypto.New(cfg.DataEncryptionKey)
	if err != nil {
		pool.Close()
		return nil, err
	}

	userStore := users.NewStore(pool)
	worktimeStore := worktime.NewStore(pool)
	payrollStore := payroll.NewStore(pool)
	notificationStore := notifications.NewStore(pool)

	authService := auth.NewService(userStore, cfg.JWTSecret, cfg.TokenTTL)
	worktimeService := worktime.NewService(worktimeStore)
	payrollService := payroll.NewService(payrollStore, cryptoService, cfg.PayslipDir)
	notificationService := notifications.New(notificationStore, email.New(cfg), cfg.EmailFrom)
	jobService := jobs.New(pool, cfg, userStore, worktimeStore, notificationService)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authService).RegisterRoutes(r)
		usershandler.NewHandler(userStore).RegisterRoutes(r)
		worktimehandler.NewHandler(worktimeService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)
		notificationshandler.NewHandler(notificationService).RegisterRoutes(r)
		jobshandler.NewHandler(jobService).RegisterRoutes(r)
	})

	return &App{
		Config:  cfg,
		DB:      pool,
		Router:  router,
		Jobs:    jobService,
		Metrics: collector,
	}, nil
}

func (a *App) Close() {
	a.DB.Close()
}
