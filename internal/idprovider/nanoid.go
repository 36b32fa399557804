package idprovider

import (
	"context"
	"fmt"

	"github.com/9ssi7/nanoid"
)

// NanoID cuts nanoid values down to the configured length.
type NanoID struct {
	length int
}

func NewNanoID(length int) *NanoID {
	if length <= 0 {
		length = DefaultLength
	}
	return &NanoID{length: length}
}

func (p *NanoID) NewID(_ context.Context) (string, error) {
	id, err := nanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}
	if len(id) > p.length {
		id = id[:p.length]
	}
	return id, nil
}
