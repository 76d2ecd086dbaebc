// Package server собирает HTTP API воедино: хранилище, handler-ы,
// цепочку middleware и graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/photojournal/internal/server/handlers"
	"github.com/iudanet/photojournal/internal/server/middleware"
	"github.com/iudanet/photojournal/internal/server/storage/sqlite"
)

const (
	// Лимит на auth эндпоинты: хеширование пароля дорогое
	authRateLimit  = 10
	authRateWindow = time.Minute

	shutdownTimeout = 10 * time.Second
)

// Config содержит настройки сервера
type Config struct {
	Addr         string // адрес HTTP сервера, например ":8080"
	DatabasePath string // путь к файлу SQLite
	JWTSecret    string // секрет для подписи токенов
	Version      string // версия приложения (ldflags)
}

// App представляет серверное приложение
type App struct {
	config     Config
	logger     *slog.Logger
	storage    *sqlite.Storage
	httpServer *http.Server
}

// NewApp создает приложение: открывает хранилище (с миграциями)
// и настраивает HTTP сервер с маршрутами
func NewApp(ctx context.Context, cfg Config, logger *slog.Logger) (*App, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}

	st, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	app := &App{
		config:  cfg,
		logger:  logger,
		storage: st,
	}

	app.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return app, nil
}

// routes настраивает маршруты и цепочку middleware:
// recovery -> logging (health пропускается) -> [rate limit | auth gate] -> handler
func (a *App) routes() http.Handler {
	jwtConfig := handlers.JWTConfig{Secret: []byte(a.config.JWTSecret)}

	authHandler := handlers.NewAuthHandler(a.logger, a.storage, jwtConfig)
	entryHandler := handlers.NewEntryHandler(a.logger, a.storage)
	healthHandler := handlers.NewHealthHandler(a.logger, a.config.Version)

	// Один limiter на оба auth маршрута
	authLimit := middleware.RateLimitMiddleware(authRateLimit, authRateWindow, a.logger)
	// Authorization gate для всех entry маршрутов
	authGate := middleware.AuthMiddleware(a.logger, jwtConfig)

	mux := http.NewServeMux()

	mux.Handle("POST /api/auth/sign-up", authLimit(http.HandlerFunc(authHandler.SignUp)))
	mux.Handle("POST /api/auth/sign-in", authLimit(http.HandlerFunc(authHandler.SignIn)))

	mux.Handle("POST /api/entries", authGate(http.HandlerFunc(entryHandler.Create)))
	mux.Handle("GET /api/entries", authGate(http.HandlerFunc(entryHandler.List)))
	mux.Handle("GET /api/entries/{entryId}", authGate(http.HandlerFunc(entryHandler.Get)))
	mux.Handle("PUT /api/entries/{entryId}", authGate(http.HandlerFunc(entryHandler.Update)))
	mux.Handle("DELETE /api/entries/{entryId}", authGate(http.HandlerFunc(entryHandler.Delete)))

	mux.HandleFunc("GET /api/health", healthHandler.Health)

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(a.logger, []string{"/api/health"})(handler)
	handler = middleware.RecoveryMiddleware(a.logger)(handler)

	return handler
}

// Run запускает HTTP сервер и блокируется до SIGINT/SIGTERM
// или ошибки сервера, после чего выполняет graceful shutdown
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errC := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.config.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		a.closeStorage()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.closeStorage()
		return fmt.Errorf("shutdown error: %w", err)
	}

	a.closeStorage()
	return nil
}

func (a *App) closeStorage() {
	if err := a.storage.Close(); err != nil {
		a.logger.Error("failed to close storage", slog.Any("error", err))
	}
}
