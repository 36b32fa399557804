package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/radiophysiker/urlshortener/internal/config"
	v1 "github.com/radiophysiker/urlshortener/internal/controller/http/v1"
	"github.com/radiophysiker/urlshortener/internal/di"
	"github.com/radiophysiker/urlshortener/internal/handlers"
	"github.com/radiophysiker/urlshortener/internal/idprovider"
	"github.com/radiophysiker/urlshortener/internal/logger"
	"github.com/radiophysiker/urlshortener/internal/metrics"
	"github.com/radiophysiker/urlshortener/internal/repository"
)

const readHeaderTimeout = 10 * time.Second

func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("cannot initialize logger: %w", err)
	}
	defer func() {
		_ = zap.L().Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := repository.NewStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("cannot create storage: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			zap.L().Error("cannot close storage", zap.Error(err))
		}
	}()

	idProvider, err := newIDProvider(ctx, cfg, storage)
	if err != nil {
		return fmt.Errorf("cannot create id provider: %w", err)
	}

	container := di.New(idProvider, storage, storage)
	m := metrics.New()
	router := v1.NewRouter(
		handlers.NewCreateHandler(container.ShortenCommand, cfg, m),
		handlers.NewGetHandler(container.GetFullURLQuery, m),
		handlers.NewPingHandler(storage),
		m,
	)

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return serve(ctx, srv, cfg.ShutdownTimeout)
}

// newIDProvider starts the sqids counter after the ids already in storage.
func newIDProvider(ctx context.Context, cfg *config.Config, counter repository.Counter) (idprovider.IDProvider, error) {
	var start uint64
	if cfg.IDProvider == idprovider.KindSqids {
		count, err := counter.Count(ctx)
		if err != nil {
			return nil, err
		}
		start = uint64(count)
	}
	return idprovider.New(cfg.IDProvider, cfg.ShortIDLength, start)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("starting server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server has encountered an error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("cannot shut down HTTP server: %w", err)
	}
	return nil
}
