package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/photojournal/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "photojournal.db", "Path to SQLite database file")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Секрет для подписи токенов обязателен, без него не стартуем
	jwtSecret := os.Getenv("PHOTOJOURNAL_JWT_SECRET")
	if jwtSecret == "" {
		logger.Error("PHOTOJOURNAL_JWT_SECRET environment variable is not set")
		os.Exit(1)
	}

	cfg := server.Config{
		Addr:         *addr,
		DatabasePath: *dbPath,
		JWTSecret:    jwtSecret,
		Version:      Version,
	}

	ctx := context.Background()

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init app", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("PhotoJournal Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
