package bookings_get

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
	email := r.URL.Query().Get("email")
	if email == "" {
		h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		return
	}

	bookings, err := h.service.ListByOwner(r.Context(), email)
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("list owner bookings")
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
