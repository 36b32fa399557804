package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/radiophysiker/urlshortener/internal/usecases"
	"github.com/radiophysiker/urlshortener/internal/utils"
)

// CreateShortURL takes the full URL as a plain text body and answers with the short URL.
func (h *CreateHandler) CreateShortURL(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	fullURL := string(body)
	if fullURL == "" {
		utils.WriteText(w, http.StatusBadRequest, "url is empty")
		return
	}
	if !isValidURL(fullURL) {
		zap.L().Debug("invalid url format", zap.String("url", fullURL))
		utils.WriteText(w, http.StatusBadRequest, "invalid url format")
		return
	}

	shortURL, err := h.creator.Execute(r.Context(), fullURL)
	if err != nil {
		if errors.Is(err, usecases.ErrURLExists) {
			zap.L().Error("no free short url left after retries", zap.Error(err))
			utils.WriteText(w, http.StatusConflict, "url already exists")
			return
		}
		if errors.Is(err, usecases.ErrEmptyFullURL) {
			utils.WriteText(w, http.StatusBadRequest, "url is empty")
			return
		}
		zap.L().Error("cannot create short URL", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	shortURLPath, err := url.JoinPath(h.config.BaseURL, shortURL)
	if err != nil {
		zap.L().Error("cannot join base URL and short URL", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.recorder.URLCreated()
	utils.WriteText(w, http.StatusCreated, shortURLPath)
}
