package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rocketshoes/internal/config"
	"rocketshoes/internal/handler"
	"rocketshoes/internal/infra/api"
	"rocketshoes/internal/infra/db"
	"rocketshoes/internal/infra/notify"
	infraRepo "rocketshoes/internal/infra/repository"
	"rocketshoes/internal/infra/storage"
	"rocketshoes/internal/logging"
	repo "rocketshoes/internal/repository"
	"rocketshoes/internal/server"
	"rocketshoes/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// 保存先（STORAGE_DRIVER）を作る
func newStore(cfg config.Config, log *logrus.Logger) (repo.KeyValueStore, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warn("storage: memory driver, cart is lost on restart")
		return storage.NewMemoryStore(), nil
	case config.StoragePostgres:
		gormDB, err := db.Connect(cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := db.Migrate(gormDB); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return storage.NewGormStore(gormDB), nil
	default:
		return storage.NewFileStore(cfg.StoragePath, log)
	}
}

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	//外部（カタログAPI・保存先）
	catalog, err := api.NewCatalogClient(cfg.CatalogAPIURL,
		api.WithTimeout(cfg.CatalogTimeout),
		api.WithLogger(log),
	)
	if err != nil {
		log.WithError(err).Fatal("catalog client")
	}

	store, err := newStore(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("storage")
	}
	cartRepo := infraRepo.NewCartStorageRepository(store, cfg.CartKey, log)

	//通知（画面用キュー + ログ）
	toasts := notify.NewToastQueue(cfg.ToastQueueSize)
	notifier := notify.Multi{toasts, notify.NewLogNotifier(log)}

	//Usecase生成
	cartUC := usecase.NewCartUsecase(catalog, cartRepo, notifier, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cartUC.Init(ctx); err != nil {
		log.WithError(err).Warn("starting with empty cart")
	}

	//Handler生成
	cartH := handler.NewCartHandler(cartUC)
	notifH := handler.NewNotificationHandler(toasts)

	e := server.New(log, cartH, notifH)

	//Server起動
	go func() {
		log.WithField("addr", cfg.Addr()).Info("server: listening")
		if err := server.Start(cfg.Addr(), e); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server: shutdown")
	}
}
