package all_bookings_put

import (
	"encoding/json"
	"errors"
	"net/http"

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

// ServeHTTP администратор меняет статус, примерную дату и назначает курьера.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	var updateDTO dto.BookingStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil || id == "" {
		h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		return
	}

	res, err := h.service.UpdateStatusAndAssignment(r.Context(), id, updateDTO.ToModify())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidBookingID),
			errors.Is(err, booking.ErrMissingRequiredFields):
			h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		case errors.Is(err, booking.ErrBookingNotFound):
			h.write(w, http.StatusNotFound, dto.Message{Message: dto.MsgNotFound})
		default:
			h.log.With(logger.NewField("error", err)).Error("update booking status and assignment")
			h.write(w, http.StatusInternalServerError, dto.Message{Message: dto.MsgInternalError})
		}
		return
	}

	h.write(w, http.StatusOK, dto.NewUpdateResult(res))
}

func (h *Handler) write(w http.ResponseWriter, status int, v any) {
	if err := dto.WriteJSON(w, status, v); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
