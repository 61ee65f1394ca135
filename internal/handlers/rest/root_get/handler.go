package root_get

import (
	"net/http"

	"shipease/pkg/logger"
)

const banner = "Ship-Ease Server is runnig"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	_, err := w.Write([]byte(banner))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write banner")
	}
}
