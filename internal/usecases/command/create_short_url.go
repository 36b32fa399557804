package command

import (
	"context"
	"errors"

	"github.com/radiophysiker/urlshortener/internal/entity"
	"github.com/radiophysiker/urlshortener/internal/idprovider"
	"github.com/radiophysiker/urlshortener/internal/usecases"
)

// MaxAttempts bounds how many ids are tried when the repository reports a collision.
const MaxAttempts = 5

//go:generate mockgen -destination=../../mocks/create_short_url_repository.go -package=mocks . CreateShortURLRepository

type CreateShortURLRepository interface {
	Save(ctx context.Context, url entity.URL) error
}

// CreateShortURLCommand stores a full URL under a freshly generated short id.
type CreateShortURLCommand struct {
	idProvider idprovider.IDProvider
	repository CreateShortURLRepository
}

func NewCreateShortURLCommand(idProvider idprovider.IDProvider, repo CreateShortURLRepository) *CreateShortURLCommand {
	return &CreateShortURLCommand{
		idProvider: idProvider,
		repository: repo,
	}
}

// Execute returns the short id the full URL was saved under.
func (c *CreateShortURLCommand) Execute(ctx context.Context, fullURL string) (string, error) {
	var err error
	for range MaxAttempts {
		var shortURL string
		shortURL, err = c.idProvider.NewID(ctx)
		if err != nil {
			return "", err
		}
		err = c.repository.Save(ctx, entity.URL{
			ShortURL: shortURL,
			FullURL:  fullURL,
		})
		if err == nil {
			return shortURL, nil
		}
		if !errors.Is(err, usecases.ErrURLExists) {
			return "", err
		}
	}
	// the last collision error still carries the id that clashed
	return "", err
}
