package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ugaemi/sullaejapgi-server/internal/config"
	"github.com/ugaemi/sullaejapgi-server/internal/game"
	"github.com/ugaemi/sullaejapgi-server/internal/handler"
	"github.com/ugaemi/sullaejapgi-server/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store init failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	engine := game.NewEngine(st)
	router := handler.NewRouter(st, engine)

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("server starting", "addr", addr)
	if err := router.Run(addr); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("no DATABASE_URL, using in-memory store")
		return store.NewMemoryStore(), nil
	}
	slog.Info("connecting to postgres")
	return store.NewPostgresStore(context.Background(), cfg.DatabaseURL)
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
