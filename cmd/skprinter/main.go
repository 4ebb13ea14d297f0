package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nruhp/newskprinter/internal/config"
	"github.com/nruhp/newskprinter/internal/mailer"
	"github.com/nruhp/newskprinter/internal/notify"
	"github.com/nruhp/newskprinter/internal/server"
	"github.com/nruhp/newskprinter/internal/storage"
	"github.com/nruhp/newskprinter/pkg/logger"
	"github.com/nruhp/newskprinter/pkg/redis"
)

func main() {
	zapLogger, err := logger.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	redisClient := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	defer redisClient.Close()

	pgStorage, err := storage.NewPostgresStorage(ctx, cfg.Database, redisClient, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init PostgreSQL storage", zap.Error(err))
	}
	defer pgStorage.Close()

	if err := pgStorage.Migrate(ctx); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	if err := seedAdmin(ctx, pgStorage, cfg.Auth, zapLogger); err != nil {
		zapLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	mail := mailer.New(cfg.SMTP, zapLogger)

	telegram, err := notify.NewTelegram(cfg.Telegram, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init Telegram notifier", zap.Error(err))
	}

	srv := server.New(pgStorage, mail, telegram, cfg, zapLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.HTTP.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server stopped with error", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("Server shutdown gracefully")
}

// seedAdmin provisions the initial admin account if it does not exist yet.
func seedAdmin(ctx context.Context, store *storage.PostgresStorage, cfg config.AuthConfig, log *zap.Logger) error {
	if cfg.SeedEmail == "" {
		return nil
	}

	_, err := store.GetUserByEmail(ctx, cfg.SeedEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := storage.User{
		Email:        cfg.SeedEmail,
		Name:         cfg.SeedName,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := store.CreateUser(ctx, &user); err != nil {
		return err
	}

	log.Info("Seeded admin user", zap.String("email", user.Email))
	return nil
}
