package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shipease/internal/pkg/middlewares/metrics"
	"shipease/pkg/logger"
)

// Middleware ограничивает обработку запроса timeout. r.Context() здесь это ongoingCtx из BaseContext,
// поэтому остановка сервера тоже отменяет запрос. Упершиеся в дедлайн запросы логируются по роуту.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("route", metrics.RouteLabel(r)),
					logger.NewField("timeout", timeout.String()),
				).Warn("request exceeded timeout")
			}
		})
	}
}
