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

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"vet-clinic-app/internal/adapters/catalog/remote"
	"vet-clinic-app/internal/adapters/storage/memory"
	"vet-clinic-app/internal/adapters/storage/postgres"
	"vet-clinic-app/internal/adapters/storage/sqlite"
	"vet-clinic-app/internal/config"
	"vet-clinic-app/internal/domain/account"
	"vet-clinic-app/internal/domain/catalog"
	"vet-clinic-app/internal/platform/logger"
	"vet-clinic-app/internal/ports/kv"
	"vet-clinic-app/internal/router"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	if err := run(log); err != nil {
		log.Error("server exited", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(log logger.Logger) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("storage (%s): %w", cfg.StorageBackend, err)
	}
	defer closeStore()
	log.Info("storage ready", map[string]any{"backend": cfg.StorageBackend})

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	mgr, err := account.Open(loadCtx, store, log)
	cancelLoad()
	if err != nil {
		return fmt.Errorf("account: %w", err)
	}

	cat, err := buildCatalog(cfg, log)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	r := router.NewRouter(router.Options{Manager: mgr, Catalog: cat})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStore abre el backend configurado. El cierre es no-op para memory.
func openStore(cfg *config.Config) (kv.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return memory.NewStore(), func() {}, nil

	case config.BackendSQLite:
		store, err := sqlite.Open(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case config.BackendPostgres:
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewStore(db), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.StorageBackend)
	}
}

func buildCatalog(cfg *config.Config, log logger.Logger) (*catalog.Catalog, error) {
	if cfg.ClinicAPIURL == "" {
		return catalog.New(nil), nil
	}
	src, err := remote.NewSource(remote.Config{
		BaseURL: cfg.ClinicAPIURL,
		APIKey:  cfg.ClinicAPIKey,
		Timeout: cfg.UpstreamTimeout,
		TTL:     cfg.CatalogCacheTTL,
	}, nil, log)
	if err != nil {
		return nil, err
	}
	log.Info("remote catalog enabled", map[string]any{"base_url": cfg.ClinicAPIURL})
	return catalog.New(src), nil
}
