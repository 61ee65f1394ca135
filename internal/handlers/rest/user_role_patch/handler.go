package user_role_patch

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"shipease/internal/entities"
	"shipease/internal/handlers/rest/dto"
	"shipease/internal/service/user"
	"shipease/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	role    entities.Role
}

func New(log handlerLogger, service Service, role entities.Role) *Handler {
	handlerLog := log.With(logger.NewField("role", role.String()))

	return &Handler{
		log:     handlerLog,
		service: service,
		role:    role,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := h.service.Promote(r.Context(), id, h.role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidUserType):
			h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		case errors.Is(err, user.ErrUserNotFound):
			h.write(w, http.StatusNotFound, dto.Message{Message: dto.MsgNotFound})
		default:
			h.log.With(logger.NewField("error", err)).Error("promote user")
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
