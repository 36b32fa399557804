package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/radiophysiker/urlshortener/internal/entity"
	"github.com/radiophysiker/urlshortener/internal/usecases"
)

type (
	ShortURL = string
	FullURL  = string
)

// MemoryStorage keeps URLs in a map. It rejects a second Save for a short URL
// that is already taken.
type MemoryStorage struct {
	mu   sync.RWMutex
	urls map[ShortURL]FullURL
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		urls: make(map[ShortURL]FullURL),
	}
}

// Save saves the URL in memory.
func (s *MemoryStorage) Save(_ context.Context, url entity.URL) error {
	return s.saveWith(url, nil)
}

// saveWith inserts url only after persist succeeds. The map stays locked
// in between, so readers never see a record that persist then rejects.
func (s *MemoryStorage) saveWith(url entity.URL, persist func() error) error {
	if url.FullURL == "" {
		return usecases.ErrEmptyFullURL
	}
	if url.ShortURL == "" {
		return usecases.ErrEmptyShortURL
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.urls[url.ShortURL]; exists {
		return fmt.Errorf("%w for: %s", usecases.ErrURLExists, url.ShortURL)
	}
	if persist != nil {
		if err := persist(); err != nil {
			return err
		}
	}
	s.urls[url.ShortURL] = url.FullURL
	return nil
}

// GetFullURL returns the full URL by the short URL.
func (s *MemoryStorage) GetFullURL(_ context.Context, shortURL ShortURL) (FullURL, error) {
	if shortURL == "" {
		return "", usecases.ErrEmptyShortURL
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fullURL, exists := s.urls[shortURL]
	if !exists {
		return "", fmt.Errorf("%w for: %s", usecases.ErrURLNotFound, shortURL)
	}
	return fullURL, nil
}

func (s *MemoryStorage) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.urls)), nil
}

func (s *MemoryStorage) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}
