package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/anything2image/gallery-api/internal/api"
	"github.com/anything2image/gallery-api/internal/core/ports"
	"github.com/anything2image/gallery-api/internal/infrastructure/config"
	mongodb "github.com/anything2image/gallery-api/internal/infrastructure/db/mongo"
	redisdb "github.com/anything2image/gallery-api/internal/infrastructure/db/redis"
	"github.com/anything2image/gallery-api/internal/infrastructure/storage"
	"github.com/anything2image/gallery-api/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	artifacts, err := newArtifactStore(ctx, cfg)
	if err != nil {
		return err
	}

	if err := ensureIndexes(ctx, db); err != nil {
		return err
	}

	e := api.NewRouter(cfg, db, rdb, artifacts, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newArtifactStore selects the binary backend from config: local disk by
// default, an S3-compatible bucket when STORAGE_BACKEND=minio.
func newArtifactStore(ctx context.Context, cfg *config.Config) (ports.ArtifactStore, error) {
	switch cfg.Storage.Backend {
	case "minio":
		store, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  cfg.Storage.MinioEndpoint,
			AccessKey: cfg.Storage.MinioAccessKey,
			SecretKey: cfg.Storage.MinioSecretKey,
			Bucket:    cfg.Storage.MinioBucket,
			UseSSL:    cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return storage.NewDiskStore(cfg.Storage.Dir)
	}
}
