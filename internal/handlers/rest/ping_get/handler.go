package ping_get

import (
	"net/http"

	"shipease/internal/handlers/rest/dto"
	"shipease/pkg/logger"
)

// Handler отвечает pong и именем драйвера хранилища, если оно подключено.
type Handler struct {
	log           handlerLogger
	storageDriver string
}

func New(log handlerLogger, storageDriver string) *Handler {
	handlerLog := log.With(logger.NewField("storage_driver", storageDriver))

	return &Handler{
		log:           handlerLog,
		storageDriver: storageDriver,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message: &message,
	}
	if h.storageDriver != "" {
		res.Storage = &h.storageDriver
	}

	if err := dto.WriteJSON(w, http.StatusOK, res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode ping response")
	}
}
