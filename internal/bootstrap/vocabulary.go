// Package bootstrap opens the external store shared by the server and the import CLI.
package bootstrap

import (
	"context"
	"fmt"

	"kidsedu/internal/adapter"
	"kidsedu/internal/adapter/storage"
	"kidsedu/internal/cache"
	"kidsedu/internal/config"
	"kidsedu/internal/database"
	"kidsedu/internal/domain"
	"kidsedu/internal/logger"
	"kidsedu/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Vocabulary holds the store collaborators of the vocabulary game.
// Repo and Storage are nil when the store is not configured. Cache is nil without Redis.
type Vocabulary struct {
	DB      *sqlx.DB
	Repo    domain.VocabularyRepository
	Storage domain.ImageStorage
	Redis   *redis.Client
	Cache   domain.Cache
}

// OpenVocabulary connects the database, image storage and optional cache.
// An unconfigured store is not an error. Redis failures only disable the cache.
func OpenVocabulary(ctx context.Context, cfg *config.Config) (*Vocabulary, error) {
	v := &Vocabulary{}
	log := logger.Get()

	if !cfg.VocabularyConfigured() {
		log.Warn("Vocabulary store is not configured, vocabulary endpoints will return 503",
			zap.String("storage_driver", cfg.Storage.Driver))
		return v, nil
	}

	imageStorage, err := NewImageStorage(cfg.Storage)
	if err != nil {
		return v, err
	}

	db, err := database.NewSQLXPostgresDB(ctx, cfg.Database)
	if err != nil {
		return v, err
	}
	log.Info("Connected to vocabulary database")

	v.DB = db
	v.Repo = repository.NewVocabularyDatabaseAdapter(db)
	v.Storage = imageStorage

	if cfg.Redis.Address != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, continuing without item cache", zap.Error(err))
		} else {
			log.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
			v.Redis = client
			v.Cache = adapter.NewRedisCacheAdapter(client)
		}
	}

	return v, nil
}

// Close releases every open connection.
func (v *Vocabulary) Close() {
	if v.Redis != nil {
		if err := v.Redis.Close(); err != nil {
			logger.Get().Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	if v.DB != nil {
		if err := v.DB.Close(); err != nil {
			logger.Get().Warn("Failed to close database", zap.Error(err))
		}
	}
}

// NewImageStorage selects the image storage driver.
func NewImageStorage(cfg config.StorageConfig) (domain.ImageStorage, error) {
	switch cfg.Driver {
	case "http":
		return storage.NewHTTPImageStorage(cfg, nil), nil
	case "local":
		return storage.NewLocalImageStorage(cfg.LocalDir), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
