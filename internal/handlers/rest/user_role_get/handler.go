package user_role_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"shipease/internal/entities"
	"shipease/internal/handlers/rest/dto"
	"shipease/pkg/logger"
)

// Handler отвечает {"<responseKey>": bool}. Совпадение email с токеном проверяет gate.
type Handler struct {
	log         handlerLogger
	service     Service
	role        entities.Role
	responseKey string
}

func New(log handlerLogger, service Service, role entities.Role, responseKey string) *Handler {
	handlerLog := log.With(logger.NewField("role", role.String()))

	return &Handler{
		log:         handlerLog,
		service:     service,
		role:        role,
		responseKey: responseKey,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var (
		ok  bool
		err error
	)
	switch h.role {
	case entities.RoleAdmin:
		ok, err = h.service.IsAdmin(r.Context(), email)
	case entities.RoleDeliveryPerson:
		ok, err = h.service.IsDeliveryMan(r.Context(), email)
	}
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("check user role")
		h.write(w, http.StatusInternalServerError, dto.Message{Message: dto.MsgInternalError})
		return
	}

	h.write(w, http.StatusOK, map[string]bool{h.responseKey: ok})
}

func (h *Handler) write(w http.ResponseWriter, status int, v any) {
	if err := dto.WriteJSON(w, status, v); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
