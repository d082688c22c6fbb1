package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/git-tutor/internal/config"
	"github.com/aliskhannn/git-tutor/internal/delivery/terminal"
	"github.com/aliskhannn/git-tutor/internal/logger"
	"github.com/aliskhannn/git-tutor/internal/repository"
	"github.com/aliskhannn/git-tutor/internal/service"
	"github.com/aliskhannn/git-tutor/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("git tutor stopped with error", zap.Error(err))
		stop()
		_ = lg.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	kv, closeKV, err := openKV(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeKV()

	// Initialize repositories and services.
	catalog, err := repository.NewCatalogRepository()
	if err != nil {
		return err
	}

	commands, err := repository.NewCommandRepository()
	if err != nil {
		return err
	}

	completionRepo := repository.NewCompletionRepository(kv)
	progressRepo := repository.NewProgressRepository(kv)
	sessions := storage.NewQuizStorage()

	quizService := service.NewQuizService(catalog, completionRepo, sessions, lg)
	progressService := service.NewProgressService(catalog, completionRepo, sessions)
	referenceService := service.NewReferenceService(commands, progressRepo, lg)

	lg.Info("git tutor ready",
		zap.String("env", cfg.Env),
		zap.String("storage", cfg.Storage.Driver),
		zap.Int("modules", catalog.Count()),
	)

	handler := terminal.NewHandler(
		os.Stdin,
		os.Stdout,
		lg,
		quizService,
		progressService,
		referenceService,
	)

	return handler.Run(ctx)
}
