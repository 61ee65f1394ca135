package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
)

const (
	msgShuttingDown = "Service is shutting down"

	// клиенты Ship-Ease повторяют запрос к следующему инстансу
	retryAfterSeconds = "5"
)

// Middleware после отмены ongoingCtx и выставления isShuttingDown отвечает 503,
// уже начатые запросы доходят до конца.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", retryAfterSeconds)
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": msgShuttingDown})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
