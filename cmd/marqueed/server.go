package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/database"
	"github.com/vmunix/marquee/internal/library"
	"github.com/vmunix/marquee/internal/server"
	"github.com/vmunix/marquee/internal/transfer"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger writes to stdout and, when a log file is configured, to a
// size-rotated file as well. The returned func releases the file.
func newLogger(cfg config.ServerConfig, stdout io.Writer) (*slog.Logger, func() error) {
	var out io.Writer = stdout
	closeLog := func() error { return nil }
	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
		}
		out = io.MultiWriter(stdout, rotator)
		closeLog = rotator.Close
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	return logger, closeLog
}

func databaseConfig(cfg config.DatabaseConfig) database.Config {
	retries := cfg.ConnectRetries
	if retries < 1 {
		retries = 1
	}
	return database.Config{
		Dialect:         database.Dialect(cfg.Driver),
		Path:            cfg.Path,
		URL:             cfg.URL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime.Duration,
		ConnectRetries:  uint(retries),
	}
}

// buildAPI wires the stores and services behind the v1 HTTP API.
func buildAPI(db *database.DB, cfg *config.Config, logger *slog.Logger) (*v1.Server, error) {
	entries := library.NewStore(db.DB, db.Dialect)
	users := auth.NewUserStore(db.DB, db.Dialect, cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL.Duration)

	return v1.NewWithDeps(v1.ServerDeps{
		Catalog:  entries,
		Transfer: transfer.New(entries, logger),
		Accounts: users,
		Tokens:   tokens,
	}, v1.Config{
		CORSOrigin:     cfg.Server.CORSOrigin,
		RequestTimeout: cfg.Server.RequestTimeout.Duration,
	}, logger)
}

func runServer(configPath string) error {
	path, err := config.Discover(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg.Server, os.Stdout)
	defer func() { _ = closeLog() }()
	logger.Info("starting marqueed", "version", version, "config", path)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, databaseConfig(cfg.Database), logger.With("component", "database"))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	logger.Info("database ready", "driver", cfg.Database.Driver)

	api, err := buildAPI(db, cfg, logger)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	runner := server.NewRunner(api.Handler(), server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout.Duration,
	}, logger)
	return runner.Run(ctx)
}
