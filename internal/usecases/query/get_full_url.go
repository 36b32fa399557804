package query

import "context"

//go:generate mockgen -destination=../../mocks/get_full_url_repository.go -package=mocks . GetFullURLRepository

type GetFullURLRepository interface {
	GetFullURL(ctx context.Context, shortURL string) (string, error)
}

// GetFullURLQuery resolves a short id back to the full URL.
type GetFullURLQuery struct {
	repository GetFullURLRepository
}

func NewGetFullURLQuery(repo GetFullURLRepository) *GetFullURLQuery {
	return &GetFullURLQuery{repository: repo}
}

// Execute returns the repository's answer untouched, so callers can match
// usecases.ErrURLNotFound and usecases.ErrEmptyShortURL with errors.Is.
func (q *GetFullURLQuery) Execute(ctx context.Context, shortURL string) (string, error) {
	return q.repository.GetFullURL(ctx, shortURL)
}
