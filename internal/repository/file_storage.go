package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/radiophysiker/urlshortener/internal/entity"
)

// FileStorage serves reads from memory and appends every saved URL to a
// JSON-lines file, which is replayed on open.
type FileStorage struct {
	*MemoryStorage

	mu       sync.Mutex
	filePath string
	count    int64
	file     *os.File
}

var ErrStorageClosed = errors.New("storage is closed")

type FileRecord struct {
	UUID        int64  `json:"uuid"`
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

func NewFileStorage(filePath string) (*FileStorage, error) {
	fs := &FileStorage{
		MemoryStorage: NewMemoryStorage(),
		filePath:      filePath,
	}

	if err := fs.init(); err != nil {
		return nil, err
	}

	return fs, nil
}

// init loads URL mapping data from the file and keeps it open for appending.
func (fs *FileStorage) init() error {
	file, err := os.OpenFile(fs.filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open storage file: %w", err)
	}
	fs.file = file

	dec := json.NewDecoder(file)
	for {
		var record FileRecord
		err := dec.Decode(&record)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to decode record %d: %w", fs.count+1, err)
		}
		fs.urls[record.ShortURL] = record.OriginalURL
		fs.count++
	}

	return nil
}

func (fs *FileStorage) Save(_ context.Context, url entity.URL) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.file == nil {
		return ErrStorageClosed
	}
	err := fs.MemoryStorage.saveWith(url, func() error {
		data, err := json.Marshal(FileRecord{
			UUID:        fs.count + 1,
			ShortURL:    url.ShortURL,
			OriginalURL: url.FullURL,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if _, err := fs.file.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write to file: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	fs.count++

	return nil
}

func (fs *FileStorage) Ping(_ context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.file == nil {
		return ErrStorageClosed
	}
	return nil
}

func (fs *FileStorage) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.file != nil {
		err := fs.file.Close()
		fs.file = nil
		return err
	}
	return nil
}
