package metrics

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

type requestInfoKey struct{}

// RequestInfo заполняется внутренними слоями (access_gate) и попадает в лог и метрики запроса.
// Запрос обрабатывается в одной горутине, поэтому без блокировок.
type RequestInfo struct {
	email      string
	deniedGate string
}

// RequestInfoFromContext nil, если запрос прошел мимо Middleware. Методы nil-safe.
func RequestInfoFromContext(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*RequestInfo)
	return info
}

func (i *RequestInfo) SetEmail(email string) {
	if i != nil {
		i.email = email
	}
}

func (i *RequestInfo) SetDenied(gate string) {
	if i != nil {
		i.deniedGate = gate
	}
}

// RouteLabel шаблон роута, чтобы /bookings/{id} не плодил лейблы.
func RouteLabel(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
