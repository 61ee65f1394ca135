package booking_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"shipease/internal/handlers/rest/dto"
	"shipease/internal/service/booking"
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

// ServeHTTP удаление отсутствующей посылки не ошибка, deletedCount будет 0.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.DeleteBooking(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidBookingID):
			h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		default:
			h.log.With(logger.NewField("error", err)).Error("delete booking")
			h.write(w, http.StatusInternalServerError, dto.Message{Message: dto.MsgInternalError})
		}
		return
	}

	h.write(w, http.StatusOK, dto.NewDeleteResult(deleted))
}

func (h *Handler) write(w http.ResponseWriter, status int, v any) {
	if err := dto.WriteJSON(w, status, v); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
