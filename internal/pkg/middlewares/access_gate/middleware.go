package access_gate

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"shipease/internal/entities"
	httpmetrics "shipease/internal/pkg/middlewares/metrics"
	"shipease/pkg/logger"
)

const (
	gateAuthenticated = "authenticated"
	gateSelf          = "self"
	gateRole          = "role"

	reasonMissingToken = "missing_token"
	reasonInvalidToken = "invalid_token"
	reasonSelfMismatch = "self_mismatch"
	reasonRoleMismatch = "role_mismatch"
	reasonResolveError = "resolve_error"

	msgUnauthorized = "Unauthorized Access"
	msgForbidden    = "Forbidden Access"
	msgInternal     = "Internal Server Error"
)

type claimsKey struct{}

// ClaimsFromContext claims, положенные Authenticated.
func ClaimsFromContext(ctx context.Context) (*entities.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*entities.Claims)
	return claims, ok && claims != nil
}

type Gate struct {
	log      handlerLogger
	verifier Verifier
	roles    RoleResolver
}

func New(log handlerLogger, verifier Verifier, roles RoleResolver) *Gate {
	return &Gate{
		log:      log.With(logger.NewField("component", "access_gate")),
		verifier: verifier,
		roles:    roles,
	}
}

// Authenticated пропускает запрос только с валидным токеном в Authorization.
func (g *Gate) Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			g.deny(w, r, gateAuthenticated, reasonMissingToken, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		// "Bearer <token>", берем вторую часть как есть
		var token string
		if parts := strings.Split(header, " "); len(parts) > 1 {
			token = parts[1]
		}

		claims, err := g.verifier.Verify(token)
		if err != nil {
			g.log.With(logger.NewField("error", err)).Warn("token rejected")
			g.deny(w, r, gateAuthenticated, reasonInvalidToken, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		httpmetrics.RequestInfoFromContext(r.Context()).SetEmail(claims.Email)

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Self требует совпадения email из токена с path-параметром param.
func (g *Gate) Self(param string, next http.Handler) http.Handler {
	return g.Authenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := ClaimsFromContext(r.Context())

		if mux.Vars(r)[param] != claims.Email {
			g.deny(w, r, gateSelf, reasonSelfMismatch, http.StatusForbidden, msgForbidden)
			return
		}

		next.ServeHTTP(w, r)
	}))
}

// Role требует роль пользователя из токена. Роль читается из хранилища на каждый запрос.
func (g *Gate) Role(role entities.Role, next http.Handler) http.Handler {
	return g.Authenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := ClaimsFromContext(r.Context())

		resolved, err := g.roles.ResolveRole(r.Context(), claims.Email)
		if err != nil {
			g.log.With(
				logger.NewField("error", err),
				logger.NewField("required_role", role.String()),
			).Error("resolve role")
			g.deny(w, r, gateRole, reasonResolveError, http.StatusInternalServerError, msgInternal)
			return
		}

		if resolved != role {
			g.deny(w, r, gateRole, reasonRoleMismatch, http.StatusForbidden, msgForbidden)
			return
		}

		next.ServeHTTP(w, r)
	}))
}

func (g *Gate) deny(w http.ResponseWriter, r *http.Request, gate, reason string, status int, message string) {
	g.log.With(
		logger.NewField("gate", gate),
		logger.NewField("reason", reason),
		logger.NewField("method", r.Method),
		logger.NewField("route", httpmetrics.RouteLabel(r)),
		logger.NewField("remote_addr", r.RemoteAddr),
	).Warn("access denied")

	AccessGateDeniedTotal.WithLabelValues(gate, reason).Inc()
	httpmetrics.RequestInfoFromContext(r.Context()).SetDenied(gate)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(map[string]string{"message": message})
	if err != nil {
		g.log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write access gate response")
	}
}
