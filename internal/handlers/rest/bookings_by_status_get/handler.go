package bookings_by_status_get

import (
	"net/http"

	"shipease/internal/handlers/rest/dto"
	"shipease/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		return
	}

	bookings, err := h.service.ListByStatus(r.Context(), status)
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("list bookings by status")
		h.write(w, http.StatusInternalServerError, dto.Message{Message: dto.MsgInternalError})
		return
	}

	h.write(w, http.StatusOK, dto.FromBookings(bookings))
}

func (h *Handler) write(w http.ResponseWriter, status int, v any) {
	if err := dto.WriteJSON(w, status, v); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
