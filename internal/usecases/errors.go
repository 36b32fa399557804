// Package usecases holds the errors shared by the shortener use cases and the
// repositories that back them. The use cases themselves live in the command
// and query subpackages.
package usecases

import "errors"

var (
	ErrURLExists     = errors.New("URL already exists")
	ErrEmptyFullURL  = errors.New("empty full URL")
	ErrEmptyShortURL = errors.New("empty short URL")
	ErrURLNotFound   = errors.New("URL not found")
)
