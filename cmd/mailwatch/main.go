package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/posturekit/kioskauth/internal/kioskauth/app"
	"github.com/posturekit/kioskauth/internal/kioskauth/mailbox"
	"github.com/posturekit/kioskauth/internal/kioskauth/store/drivers/sqlite"
	"github.com/posturekit/kioskauth/pkg/slogx"
)

// mailwatch is the standalone mailbox ingestion worker: it tails the
// SMS-gateway inbox and records a pending auth for every forwarded message,
// so the mobile token exchange can find them. Run one instance per mailbox
// credential.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := slogx.New(slogx.Config{
		Service: "mailwatch",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	db, err := sqlite.NewStore("file:" + cfg.DatabaseFile + "?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		log.Fatalf("failed to apply database migrations: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := &mailbox.Watcher{
		Config: mailbox.Config{
			Address:        cfg.MailAddress,
			Username:       cfg.MailUsername,
			Password:       cfg.MailPassword,
			AllowedDomains: cfg.MailAllowedDomains,
			// Ingestion reads the device uid from the first body line.
			Source: mailbox.CodeFromBody,
		},
		Store:         db,
		Logger:        logger,
		CheckInterval: cfg.MailCheckInterval,
		SearchWindow:  cfg.MailSearchWindow,
	}

	logger.Info("mailwatch starting", "address", cfg.MailAddress)
	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("watcher error: %v", err)
	}
	logger.Info("mailwatch stopped")
}
