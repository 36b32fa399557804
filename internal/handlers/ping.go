package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/radiophysiker/urlshortener/internal/utils"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type PingHandler struct {
	pinger Pinger
}

func NewPingHandler(pinger Pinger) *PingHandler {
	return &PingHandler{pinger: pinger}
}

func (h *PingHandler) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()
	if h.pinger == nil {
		zap.L().Error("storage is not configured")
		utils.WriteText(w, http.StatusInternalServerError, "storage connection error")
		return
	}
	if err := h.pinger.Ping(ctx); err != nil {
		zap.L().Error("storage connection error", zap.Error(err))
		utils.WriteText(w, http.StatusInternalServerError, "storage connection error")
		return
	}
	utils.WriteText(w, http.StatusOK, "OK")
}
