package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/valencire/account/internal/account"
	"github.com/valencire/account/internal/config"
	"github.com/valencire/account/internal/kvstore"
	"github.com/valencire/account/internal/logging"
	"github.com/valencire/account/internal/session"
	"github.com/valencire/account/internal/ui"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	kv, err := kvstore.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer kv.Close()

	accounts := account.NewStore(kv, cfg)
	if err := accounts.Load(ctx); err != nil {
		log.Fatalf("loading accounts: %v", err)
	}
	logger.Info(ctx, "store loaded", "users", accounts.Count(), "backend", cfg.Storage)

	sessions := session.NewManager(kv, accounts)

	app := ui.NewApp(accounts, sessions, logger)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
