// Command devnode локальный узел сервиса сокращения ссылок с маршрутами /set и /get.
// Нужен, чтобы гонять loadgen в режиме local без развёрнутого кластера.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Totarae/shortener-ops/internal/config"
	"github.com/Totarae/shortener-ops/internal/database"
	"github.com/Totarae/shortener-ops/internal/handlers"
	"github.com/Totarae/shortener-ops/internal/logger"
	"github.com/Totarae/shortener-ops/internal/repositories"
	"github.com/Totarae/shortener-ops/internal/router"
	"github.com/Totarae/shortener-ops/internal/service"
	"github.com/Totarae/shortener-ops/internal/storage"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("devnode: %v", err)
	}
}

func run(args []string) error {
	cfg, err := config.NewDevnodeConfig(args)
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		repo  service.Repository
		store storage.Storage
	)
	switch cfg.Mode {
	case config.StorageDatabase:
		db, dbErr := database.NewDB(ctx, cfg.DatabaseDSN, zlog)
		if dbErr != nil {
			return dbErr
		}
		defer db.Close()
		repo = repositories.NewURLRepository(db)
	default:
		urlStore, storeErr := storage.NewURLStore(cfg.FileStoragePath)
		if storeErr != nil {
			return storeErr
		}
		zlog.Info("storage loaded", zap.String("path", cfg.FileStoragePath), zap.Int("mappings", urlStore.Len()))
		store = urlStore
	}

	svc := service.NewMappingService(repo, store, zlog, cfg.Mode)
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router.NewRouter(handlers.NewHandler(svc, zlog), zlog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("Сервер запущен", zap.String("address", cfg.ServerAddress), zap.String("mode", cfg.Mode))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	zlog.Info("Остановка сервера")
	return srv.Shutdown(shutdownCtx)
}
