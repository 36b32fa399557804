package middleware

import (
	"net/http"
	"time"
)

type RequestObserver interface {
	ObserveRequest(method string, status int, d time.Duration)
}

func Metrics(observer RequestObserver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			observer.ObserveRequest(r.Method, wrapped.status, time.Since(start))
		})
	}
}
