package idprovider

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UUID uses the leading hex digits of a random v4 UUID.
type UUID struct {
	length int
}

func NewUUID(length int) *UUID {
	if length <= 0 {
		length = DefaultLength
	}
	return &UUID{length: length}
}

func (p *UUID) NewID(_ context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	s := strings.ReplaceAll(id.String(), "-", "")
	if len(s) > p.length {
		s = s[:p.length]
	}
	return s, nil
}
