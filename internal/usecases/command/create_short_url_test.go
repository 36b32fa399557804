package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiophysiker/urlshortener/internal/entity"
	"github.com/radiophysiker/urlshortener/internal/mocks"
	"github.com/radiophysiker/urlshortener/internal/usecases"
)

func TestExecuteSavesGeneratedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ids := mocks.NewMockIDProvider(ctrl)
	repo := mocks.NewMockCreateShortURLRepository(ctrl)
	ids.EXPECT().NewID(ctx).Return("abc123", nil)
	repo.EXPECT().Save(ctx, entity.URL{ShortURL: "abc123", FullURL: "https://example.com"}).Return(nil)

	shortURL, err := NewCreateShortURLCommand(ids, repo).Execute(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "abc123", shortURL)
}

func TestExecuteRetriesOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ids := mocks.NewMockIDProvider(ctrl)
	repo := mocks.NewMockCreateShortURLRepository(ctrl)
	gomock.InOrder(
		ids.EXPECT().NewID(ctx).Return("taken", nil),
		repo.EXPECT().Save(ctx, entity.URL{ShortURL: "taken", FullURL: "https://example.com"}).
			Return(fmt.Errorf("%w for: %s", usecases.ErrURLExists, "taken")),
		ids.EXPECT().NewID(ctx).Return("free", nil),
		repo.EXPECT().Save(ctx, entity.URL{ShortURL: "free", FullURL: "https://example.com"}).Return(nil),
	)

	shortURL, err := NewCreateShortURLCommand(ids, repo).Execute(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "free", shortURL)
}

func TestExecuteGivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ids := mocks.NewMockIDProvider(ctrl)
	repo := mocks.NewMockCreateShortURLRepository(ctrl)
	ids.EXPECT().NewID(ctx).Return("taken", nil).Times(MaxAttempts)
	repo.EXPECT().Save(ctx, gomock.Any()).Return(usecases.ErrURLExists).Times(MaxAttempts)

	shortURL, err := NewCreateShortURLCommand(ids, repo).Execute(ctx, "https://example.com")
	assert.ErrorIs(t, err, usecases.ErrURLExists)
	assert.Empty(t, shortURL)
}

func TestExecutePropagatesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	errStorage := errors.New("disk is full")

	ids := mocks.NewMockIDProvider(ctrl)
	repo := mocks.NewMockCreateShortURLRepository(ctrl)
	ids.EXPECT().NewID(ctx).Return("abc123", nil)
	repo.EXPECT().Save(ctx, gomock.Any()).Return(errStorage)

	_, err := NewCreateShortURLCommand(ids, repo).Execute(ctx, "https://example.com")
	assert.Same(t, errStorage, err)
}

func TestExecutePropagatesIDProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	errExhausted := errors.New("id space exhausted")

	ids := mocks.NewMockIDProvider(ctrl)
	repo := mocks.NewMockCreateShortURLRepository(ctrl)
	ids.EXPECT().NewID(ctx).Return("", errExhausted)

	_, err := NewCreateShortURLCommand(ids, repo).Execute(ctx, "https://example.com")
	assert.Same(t, errExhausted, err)
}
