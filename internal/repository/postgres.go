package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/radiophysiker/urlshortener/internal/entity"
	"github.com/radiophysiker/urlshortener/internal/repository/migrations"
	"github.com/radiophysiker/urlshortener/internal/usecases"
)

const queryTimeout = 3 * time.Second

type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	if err := migrate(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &PostgresStorage{
		pool: pool,
	}, nil
}

// migrate brings the schema up to date through the pgx database/sql driver.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			zap.L().Error("failed to close migration connection", zap.Error(err))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// Count returns the highest row id, which is never below the number of rows.
func (p *PostgresStorage) Count(ctx context.Context) (int64, error) {
	dbctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int64
	err := p.pool.QueryRow(dbctx, `SELECT COALESCE(MAX(id), 0) FROM shortened_urls;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count URLs: %w", err)
	}
	return count, nil
}

func (p *PostgresStorage) Save(ctx context.Context, url entity.URL) error {
	if url.FullURL == "" {
		return usecases.ErrEmptyFullURL
	}
	if url.ShortURL == "" {
		return usecases.ErrEmptyShortURL
	}
	dbctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
	INSERT INTO shortened_urls (short_url, full_url)
	VALUES ($1, $2);
	`
	_, err := p.pool.Exec(dbctx, query, url.ShortURL, url.FullURL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w for: %s", usecases.ErrURLExists, url.ShortURL)
		}
		return fmt.Errorf("failed to save URL: %w", err)
	}
	return nil
}

func (p *PostgresStorage) GetFullURL(ctx context.Context, shortURL ShortURL) (FullURL, error) {
	if shortURL == "" {
		return "", usecases.ErrEmptyShortURL
	}
	dbctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
	SELECT full_url
	FROM shortened_urls
	WHERE short_url = $1;
	`
	var fullURL FullURL
	err := p.pool.QueryRow(dbctx, query, shortURL).Scan(&fullURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w for: %s", usecases.ErrURLNotFound, shortURL)
		}
		return "", fmt.Errorf("couldn't get full URL for %s: %w", shortURL, err)
	}
	return fullURL, nil
}
