package main

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "shipease/internal/app"
	"shipease/internal/entities"
	"shipease/internal/handlers/rest/all_bookings_get"
	"shipease/internal/handlers/rest/all_bookings_put"
	"shipease/internal/handlers/rest/booking_delete"
	"shipease/internal/handlers/rest/booking_get"
	"shipease/internal/handlers/rest/booking_patch"
	"shipease/internal/handlers/rest/booking_post"
	"shipease/internal/handlers/rest/bookings_by_status_get"
	"shipease/internal/handlers/rest/bookings_get"
	"shipease/internal/handlers/rest/delivery_bookings_get"
	"shipease/internal/handlers/rest/delivery_bookings_put"
	"shipease/internal/handlers/rest/healthcheck_head"
	"shipease/internal/handlers/rest/jwt_post"
	"shipease/internal/handlers/rest/ping_get"
	"shipease/internal/handlers/rest/registered_users_get"
	"shipease/internal/handlers/rest/root_get"
	"shipease/internal/handlers/rest/user_post"
	"shipease/internal/handlers/rest/user_role_get"
	"shipease/internal/handlers/rest/user_role_patch"
	"shipease/internal/handlers/rest/users_by_type_get"
	"shipease/internal/pkg/config"
	"shipease/internal/pkg/middlewares/access_gate"
	"shipease/internal/pkg/middlewares/cors"
	"shipease/internal/pkg/middlewares/graceful_shutdown"
	"shipease/internal/pkg/middlewares/metrics"
	"shipease/internal/pkg/middlewares/timeout"
	"shipease/pkg/logger"
)

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(mux.CORSMethodMiddleware(router))
	router.Use(cors.Middleware(cfg.CORSAllowedOrigins))
	router.Use(timeout.Middleware(log, cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Storage)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log, app.Storage.Driver())).Methods(http.MethodGet)
	router.Handle("/", root_get.New(log)).Methods(http.MethodGet)

	gate := access_gate.New(log, app.ServiceToken, app.ServiceUser)

	// users
	router.Handle("/users", user_post.New(log, app.ServiceUser)).
		Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/jwt", jwt_post.New(log, app.ServiceToken)).
		Methods(http.MethodPost, http.MethodOptions)

	router.Handle("/users/admin/{email}",
		gate.Self("email", user_role_get.New(log, app.ServiceUser, entities.RoleAdmin, "admin")),
	).Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/users/deliveryMen/{email}",
		gate.Self("email", user_role_get.New(log, app.ServiceUser, entities.RoleDeliveryPerson, "deliveryMen")),
	).Methods(http.MethodGet, http.MethodOptions)

	router.Handle("/users/admin/{id}",
		gate.Role(entities.RoleAdmin, user_role_patch.New(log, app.ServiceUser, entities.RoleAdmin)),
	).Methods(http.MethodPatch, http.MethodOptions)
	router.Handle("/users/deliveryMen/{id}",
		gate.Role(entities.RoleAdmin, user_role_patch.New(log, app.ServiceUser, entities.RoleDeliveryPerson)),
	).Methods(http.MethodPatch, http.MethodOptions)

	router.Handle("/registeredUsers", registered_users_get.New(log, app.ServiceUser)).
		Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/allUsers",
		gate.Role(entities.RoleAdmin, users_by_type_get.New(log, app.ServiceUser)),
	).Methods(http.MethodGet, http.MethodOptions)

	// bookings
	router.Handle("/bookings", booking_post.New(log, app.ServiceBooking)).
		Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/bookings",
		gate.Authenticated(bookings_get.New(log, app.ServiceBooking)),
	).Methods(http.MethodGet, http.MethodOptions)

	router.Handle("/bookings/{id}", booking_get.New(log, app.ServiceBooking)).
		Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/bookings/{id}", booking_patch.New(log, app.ServiceBooking)).
		Methods(http.MethodPatch, http.MethodOptions)
	router.Handle("/bookings/{id}",
		gate.Authenticated(booking_delete.New(log, app.ServiceBooking)),
	).Methods(http.MethodDelete, http.MethodOptions)

	router.Handle("/allBookings",
		gate.Role(entities.RoleAdmin, all_bookings_get.New(log, app.ServiceBooking)),
	).Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/allBookings",
		gate.Role(entities.RoleAdmin, all_bookings_put.New(log, app.ServiceBooking)),
	).Methods(http.MethodPut, http.MethodOptions)

	router.Handle("/allDeliveryBookings",
		gate.Role(entities.RoleDeliveryPerson, delivery_bookings_get.New(log, app.ServiceBooking)),
	).Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/allDeliveryBookings",
		gate.Role(entities.RoleDeliveryPerson, delivery_bookings_put.New(log, app.ServiceBooking)),
	).Methods(http.MethodPut, http.MethodOptions)

	router.Handle("/homeAllBookings", all_bookings_get.New(log, app.ServiceBooking)).
		Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/allDelivered", bookings_by_status_get.New(log, app.ServiceBooking)).
		Methods(http.MethodGet, http.MethodOptions)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
