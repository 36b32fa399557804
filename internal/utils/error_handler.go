package utils

import (
	"net/http"

	"go.uber.org/zap"
)

// WriteErrorWithCannotWriteResponse logs err and answers 500. Use it only
// before anything has been written to w.
func WriteErrorWithCannotWriteResponse(w http.ResponseWriter, err error) {
	zap.L().Error("cannot write response", zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
}

// LogWriteError logs a failed body write; the status line is already gone by then.
func LogWriteError(err error) {
	zap.L().Error("cannot write response body", zap.Error(err))
}

// WriteText answers with a plain text body.
func WriteText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		LogWriteError(err)
	}
}
