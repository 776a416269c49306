package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/remont/internal/calc"
	"github.com/Simplici0/remont/internal/config"
	"github.com/Simplici0/remont/internal/db"
	"github.com/Simplici0/remont/internal/formstate"
	"github.com/Simplici0/remont/internal/locale"
	"github.com/Simplici0/remont/internal/metrics"
	"github.com/Simplici0/remont/internal/migrations"
	"github.com/Simplici0/remont/internal/seed"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	cfg     config.Config
	db      *sql.DB
	calc    *calc.Calculator
	tr      *locale.Translator
	state   formstate.Store
	metrics *metrics.Metrics
}

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		slog.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}

	stats, err := seed.Run(ctx, database, seed.DefaultChecklist)
	if err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "path", cfg.DBPath, "seed_inserts", stats.Inserts, "seed_updates", stats.Updates)

	srv, err := newServer(cfg, database)
	if err != nil {
		slog.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}()

	slog.Info("listening", "addr", httpServer.Addr, "env", cfg.Env)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server closed")
}

func newServer(cfg config.Config, database *sql.DB) (*server, error) {
	tr, err := locale.New(cfg.DefaultLang)
	if err != nil {
		return nil, err
	}

	return &server{
		cfg:     cfg,
		db:      database,
		calc:    calc.New(cfg.Tables()),
		tr:      tr,
		state:   formstate.NewSQLStore(database),
		metrics: metrics.New(),
	}, nil
}

func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/reference", s.handleReference)
		r.Post("/calc/{kind}", s.handleCalculate)

		r.Get("/calculations", s.handleCalculationsList)
		r.Get("/calculations/{id}", s.handleCalculationDetail)
		r.Get("/calculations/{id}/text", s.handleCalculationText)
		r.Get("/calculations/{id}/xlsx", s.handleCalculationXLSX)
		r.Get("/calculations/{id}/qr.png", s.handleCalculationQR)

		r.Get("/state/{calculator}", s.handleStateGet)
		r.Put("/state/{calculator}", s.handleStatePut)
		r.Delete("/state/{calculator}", s.handleStateDelete)

		r.Get("/checklist", s.handleChecklist)
		r.Put("/checklist/{slug}", s.handleChecklistToggle)
	})

	// Short share link.
	r.Get("/c/{id}", s.handleCalculationText)

	return r
}
