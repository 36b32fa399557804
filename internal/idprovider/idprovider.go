// Package idprovider generates the identifiers used as short URL codes.
package idprovider

import (
	"context"
	"errors"
	"fmt"
)

const DefaultLength = 6

const (
	KindRandom = "random"
	KindNanoID = "nanoid"
	KindUUID   = "uuid"
	KindSqids  = "sqids"
)

var ErrUnknownProvider = errors.New("unknown id provider")

//go:generate mockgen -destination=../mocks/id_provider.go -package=mocks . IDProvider

// IDProvider produces a new identifier on every call.
type IDProvider interface {
	NewID(ctx context.Context) (string, error)
}

// New returns the provider registered under kind. start only matters for
// sqids, which continues counting after it.
func New(kind string, length int, start uint64) (IDProvider, error) {
	if length <= 0 {
		length = DefaultLength
	}
	switch kind {
	case KindRandom, "":
		return NewRandom(length), nil
	case KindNanoID:
		return NewNanoID(length), nil
	case KindUUID:
		return NewUUID(length), nil
	case KindSqids:
		return NewSqids(DefaultSqidsAlphabet, length, start)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, kind)
	}
}
