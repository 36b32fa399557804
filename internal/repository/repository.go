package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/radiophysiker/urlshortener/internal/config"
	"github.com/radiophysiker/urlshortener/internal/entity"
)

type Saver interface {
	Save(ctx context.Context, url entity.URL) error
}

type Finder interface {
	GetFullURL(ctx context.Context, shortURL string) (string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Counter reports how many URLs have been stored so far.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Closer interface {
	Close() error
}

// Storage is both the write and the read side of the shortener.
type Storage interface {
	Saver
	Finder
	Pinger
	Counter
	Closer
}

// NewStorage picks Postgres when a DSN is configured, then a file, then memory.
func NewStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	if cfg.DatabaseDSN != "" {
		zap.L().Info("using postgres storage")
		pg, err := NewPostgresStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	if cfg.FileStoragePath != "" {
		zap.L().Info("using file storage", zap.String("path", cfg.FileStoragePath))
		fs, err := NewFileStorage(cfg.FileStoragePath)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}
	zap.L().Info("using memory storage")
	return NewMemoryStorage(), nil
}
