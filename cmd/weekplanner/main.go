package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"weekplanner/internal/config"
	"weekplanner/internal/planner"
	"weekplanner/internal/service"
	"weekplanner/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	db, err := storage.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	snaps := storage.NewSnapshotRepository(db, logger)
	pl := planner.New(ctx, snaps, logger)
	defer pl.Close()

	if cfg.BackupEvery > 0 {
		backups := service.NewBackupService(pl, cfg.BackupDir, logger)
		if _, err := backups.ScheduleInterval(cfg.BackupEvery); err != nil {
			log.Fatalf("schedule backups: %v", err)
		}
		backups.Start()
		defer backups.Stop()
	}

	logger.Info("weekly planner ready", "events", len(pl.Events()))
	<-ctx.Done()
	logger.Info("shutdown complete")
}

func logLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
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
