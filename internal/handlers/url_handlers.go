package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/radiophysiker/urlshortener/internal/config"
	"github.com/radiophysiker/urlshortener/internal/utils"
)

// MaxBodySize caps the body of a create request.
const MaxBodySize = 64 << 10

type URLCreator interface {
	Execute(ctx context.Context, fullURL string) (string, error)
}

// Recorder counts handler outcomes; *metrics.Metrics satisfies it.
type Recorder interface {
	URLCreated()
	Redirect(result string)
}

type CreateHandler struct {
	creator  URLCreator
	config   *config.Config
	recorder Recorder
}

func NewCreateHandler(creator URLCreator, cfg *config.Config, recorder Recorder) *CreateHandler {
	return &CreateHandler{
		creator:  creator,
		config:   cfg,
		recorder: recorder,
	}
}

func isValidURL(raw string) bool {
	parsedURL, err := url.Parse(raw)
	return err == nil && parsedURL.Scheme != "" && parsedURL.Host != ""
}

// readBody reads at most MaxBodySize bytes of the request body. On failure it
// has already answered the client.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.WriteText(w, http.StatusRequestEntityTooLarge, "request body is too large")
			return nil, false
		}
		zap.L().Error("cannot read request body", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	return body, true
}
