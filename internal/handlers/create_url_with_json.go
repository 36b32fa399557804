package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/radiophysiker/urlshortener/internal/usecases"
	"github.com/radiophysiker/urlshortener/internal/utils"
)

type CreateShortURLEntryRequest struct {
	FullURL string `json:"url"`
}

type CreateShortURLEntryResponse struct {
	ShortURL string `json:"result"`
}

func (h *CreateHandler) CreateShortURLWithJSON(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var request CreateShortURLEntryRequest
	if err := json.Unmarshal(body, &request); err != nil {
		utils.WriteText(w, http.StatusBadRequest, "invalid json format")
		return
	}

	fullURL := request.FullURL
	if fullURL == "" {
		utils.WriteText(w, http.StatusBadRequest, "fullURL is empty")
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
			zap.L().Error("no free short url left after retries", zap.Error(err), zap.String("url", fullURL))
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
	jsonResp, err := json.Marshal(CreateShortURLEntryResponse{ShortURL: shortURLPath})
	if err != nil {
		utils.WriteErrorWithCannotWriteResponse(w, err)
		return
	}

	h.recorder.URLCreated()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(jsonResp); err != nil {
		utils.LogWriteError(err)
	}
}
