package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/radiophysiker/urlshortener/internal/metrics"
	"github.com/radiophysiker/urlshortener/internal/usecases"
	"github.com/radiophysiker/urlshortener/internal/utils"
)

type URLGetter interface {
	Execute(ctx context.Context, shortURL string) (string, error)
}

type GetHandler struct {
	getter   URLGetter
	recorder Recorder
}

func NewGetHandler(getter URLGetter, recorder Recorder) *GetHandler {
	return &GetHandler{
		getter:   getter,
		recorder: recorder,
	}
}

// GetFullURL redirects to the full URL stored under {id}.
func (h *GetHandler) GetFullURL(w http.ResponseWriter, r *http.Request) {
	shortURL := chi.URLParam(r, "id")
	fullURL, err := h.getter.Execute(r.Context(), shortURL)
	if err != nil {
		if errors.Is(err, usecases.ErrEmptyShortURL) {
			utils.WriteText(w, http.StatusBadRequest, "short url is empty")
			return
		}
		if errors.Is(err, usecases.ErrURLNotFound) {
			zap.L().Debug("url is not found for shortURL", zap.String("shortURL", shortURL))
			h.recorder.Redirect(metrics.RedirectNotFound)
			utils.WriteText(w, http.StatusNotFound, "url is not found for "+shortURL)
			return
		}
		zap.L().Error("cannot get full URL", zap.Error(err), zap.String("shortURL", shortURL))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.recorder.Redirect(metrics.RedirectFound)
	w.Header().Set("Location", fullURL)
	w.WriteHeader(http.StatusTemporaryRedirect)
}
