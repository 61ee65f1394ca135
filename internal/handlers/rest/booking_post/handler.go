package booking_post

import (
	"encoding/json"
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
	var bookingDTO dto.Booking
	err := json.NewDecoder(r.Body).Decode(&bookingDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		return
	}

	id, err := h.service.CreateBooking(r.Context(), bookingDTO.ToBookingFields())
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("create booking")
		h.write(w, http.StatusInternalServerError, dto.Message{Message: dto.MsgInternalError})
		return
	}

	h.write(w, http.StatusOK, dto.NewInsertResult(id))
}

func (h *Handler) write(w http.ResponseWriter, status int, v any) {
	if err := dto.WriteJSON(w, status, v); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
