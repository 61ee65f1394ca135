package user_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipease/internal/handlers/rest/dto"
	"shipease/internal/service/user"
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
	var userDTO dto.UserRegister
	err := json.NewDecoder(r.Body).Decode(&userDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		return
	}

	id, err := h.service.Register(r.Context(), userDTO.ToModify())
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserAlreadyExists):
			// повторная регистрация не ошибка для клиента
			h.write(w, http.StatusOK, dto.UserExistsResult{Message: dto.MsgUserAlreadyExist})
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidUserType):
			h.write(w, http.StatusBadRequest, dto.Message{Message: dto.MsgBadRequest})
		default:
			h.log.With(logger.NewField("error", err)).Error("register user")
			h.write(w, http.StatusInternalServerError, dto.Message{Message: dto.MsgInternalError})
		}
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
