package di

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiophysiker/urlshortener/internal/entity"
	"github.com/radiophysiker/urlshortener/internal/mocks"
	"github.com/radiophysiker/urlshortener/internal/usecases"
)

type fixedID string

func (f fixedID) NewID(context.Context) (string, error) {
	return string(f), nil
}

// mapStore records saved pairs and answers lookups from the same map.
type mapStore struct {
	urls map[string]string
}

func (m *mapStore) Save(_ context.Context, url entity.URL) error {
	m.urls[url.ShortURL] = url.FullURL
	return nil
}

func (m *mapStore) GetFullURL(_ context.Context, shortURL string) (string, error) {
	fullURL, ok := m.urls[shortURL]
	if !ok {
		return "", fmt.Errorf("%w for: %s", usecases.ErrURLNotFound, shortURL)
	}
	return fullURL, nil
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	c := New(
		mocks.NewMockIDProvider(ctrl),
		mocks.NewMockCreateShortURLRepository(ctrl),
		mocks.NewMockGetFullURLRepository(ctrl),
	)
	require.NotNil(t, c)
	assert.NotNil(t, c.ShortenCommand)
	assert.NotNil(t, c.GetFullURLQuery)
}

func TestShortenCommandUsesInjectedCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ids := mocks.NewMockIDProvider(ctrl)
	writeRepo := mocks.NewMockCreateShortURLRepository(ctrl)
	readRepo := mocks.NewMockGetFullURLRepository(ctrl)
	ids.EXPECT().NewID(ctx).Return("abc123", nil).Times(1)
	writeRepo.EXPECT().Save(ctx, entity.URL{ShortURL: "abc123", FullURL: "https://example.com"}).Return(nil).Times(1)

	c := New(ids, writeRepo, readRepo)
	shortURL, err := c.ShortenCommand.Execute(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "abc123", shortURL)
}

func TestGetFullURLQueryUsesInjectedRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ids := mocks.NewMockIDProvider(ctrl)
	writeRepo := mocks.NewMockCreateShortURLRepository(ctrl)
	readRepo := mocks.NewMockGetFullURLRepository(ctrl)
	readRepo.EXPECT().GetFullURL(ctx, "abc123").Return("https://example.com", nil).Times(1)

	c := New(ids, writeRepo, readRepo)
	fullURL, err := c.GetFullURLQuery.Execute(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", fullURL)
}

func TestContainersDoNotShareCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	firstRepo := mocks.NewMockCreateShortURLRepository(ctrl)
	secondRepo := mocks.NewMockCreateShortURLRepository(ctrl)
	firstRead := mocks.NewMockGetFullURLRepository(ctrl)
	secondRead := mocks.NewMockGetFullURLRepository(ctrl)

	firstRepo.EXPECT().Save(ctx, entity.URL{ShortURL: "first", FullURL: "https://one.example"}).Return(nil).Times(1)
	secondRepo.EXPECT().Save(ctx, entity.URL{ShortURL: "second", FullURL: "https://two.example"}).Return(nil).Times(1)
	firstRead.EXPECT().GetFullURL(ctx, "first").Return("https://one.example", nil).Times(1)
	secondRead.EXPECT().GetFullURL(ctx, "second").Return("https://two.example", nil).Times(1)

	first := New(fixedID("first"), firstRepo, firstRead)
	second := New(fixedID("second"), secondRepo, secondRead)

	_, err := first.ShortenCommand.Execute(ctx, "https://one.example")
	require.NoError(t, err)
	_, err = second.ShortenCommand.Execute(ctx, "https://two.example")
	require.NoError(t, err)

	fullURL, err := first.GetFullURLQuery.Execute(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, "https://one.example", fullURL)
	fullURL, err = second.GetFullURLQuery.Execute(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, "https://two.example", fullURL)
}

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	store := &mapStore{urls: make(map[string]string)}
	c := New(fixedID("abc123"), store, store)

	shortURL, err := c.ShortenCommand.Execute(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "abc123", shortURL)
	assert.Equal(t, map[string]string{"abc123": "https://example.com"}, store.urls)

	fullURL, err := c.GetFullURLQuery.Execute(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", fullURL)

	fullURL, err = c.GetFullURLQuery.Execute(ctx, "zzz999")
	assert.ErrorIs(t, err, usecases.ErrURLNotFound)
	assert.Empty(t, fullURL)
}
