package cors

import (
	"net/http"

	"github.com/gorilla/handlers"
)

var (
	allowedHeaders = []string{"Content-Type", "Authorization"}
	allowedMethods = []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
)

// Middleware подключается после mux.CORSMethodMiddleware: тот выставляет Allow-Methods
// по методам роута, поэтому роуты регистрируются вместе с http.MethodOptions.
// Пустой allowedOrigins разрешает любой origin.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedHeaders(allowedHeaders),
		handlers.AllowedMethods(allowedMethods),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
}
