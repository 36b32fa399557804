// Package di is the composition root of the shortener: it binds an id
// provider and the write and read repositories into the create and get use
// cases.
package di

import (
	"github.com/radiophysiker/urlshortener/internal/idprovider"
	"github.com/radiophysiker/urlshortener/internal/usecases/command"
	"github.com/radiophysiker/urlshortener/internal/usecases/query"
)

// Container holds the use cases built by New.
type Container struct {
	ShortenCommand  *command.CreateShortURLCommand
	GetFullURLQuery *query.GetFullURLQuery
}

// New wires the use cases. It never fails and does no I/O.
func New(
	idProvider idprovider.IDProvider,
	repo command.CreateShortURLRepository,
	readRepo query.GetFullURLRepository,
) *Container {
	return &Container{
		ShortenCommand:  command.NewCreateShortURLCommand(idProvider, repo),
		GetFullURLQuery: query.NewGetFullURLQuery(readRepo),
	}
}
