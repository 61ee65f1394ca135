//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

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
	"shipease/internal/handlers/rest/jwt_post"
	"shipease/internal/handlers/rest/registered_users_get"
	"shipease/internal/handlers/rest/user_post"
	"shipease/internal/handlers/rest/user_role_get"
	"shipease/internal/handlers/rest/user_role_patch"
	"shipease/internal/handlers/rest/users_by_type_get"
	"shipease/internal/handlers/tasks/booking_stats"
	"shipease/internal/pkg/config"
	"shipease/internal/pkg/metrics"
	"shipease/internal/pkg/middlewares/access_gate"
	"shipease/internal/pkg/storage"
	bookingService "shipease/internal/service/booking"
	tokenService "shipease/internal/service/token"
	userService "shipease/internal/service/user"

	"shipease/pkg/background"
	"shipease/pkg/logger"

	"github.com/google/wire"
)

type (
	BookingStatsInterval time.Duration
)

type Application struct {
	Storage           *storage.Storage
	ServiceUser       ServiceUser
	ServiceBooking    ServiceBooking
	ServiceToken      ServiceToken
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	user_post.Service
	user_role_get.Service
	user_role_patch.Service
	registered_users_get.Service
	users_by_type_get.Service
	access_gate.RoleResolver
}

type ServiceBooking interface {
	booking_post.Service
	bookings_get.Service
	booking_get.Service
	booking_patch.Service
	booking_delete.Service
	all_bookings_get.Service
	all_bookings_put.Service
	delivery_bookings_get.Service
	delivery_bookings_put.Service
	bookings_by_status_get.Service
}

type ServiceToken interface {
	jwt_post.Service
	access_gate.Verifier
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	store *storage.Storage,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		wire.FieldsOf(new(*storage.Storage), "Bookings", "Users"),
		provideBookingStatsInterval,

		provideServiceUser,
		provideServiceBooking,
		provideServiceToken,

		provideBookingStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.Service)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Service)),
		wire.Bind(new(ServiceToken), new(*tokenService.Service)),

		wire.Bind(new(booking_stats.Service), new(*bookingService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	BookingService *bookingService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-booking-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	store *storage.Storage,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		wire.FieldsOf(new(*storage.Storage), "Bookings"),
		provideServiceBooking,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideServiceUser(repository userService.Repository) *userService.Service {
	return userService.New(repository)
}

func provideServiceBooking(repository bookingService.Repository) *bookingService.Service {
	return bookingService.New(repository)
}

func provideServiceToken(cfg *config.Config) (*tokenService.Service, error) {
	return tokenService.New(cfg.Auth.AccessTokenSecret)
}

func provideBookingStatsInterval(cfg *config.Config) BookingStatsInterval {
	return BookingStatsInterval(cfg.Tasks.BookingStatsInterval)
}

func provideBookingStatsTask(
	log logger.Logger,
	service booking_stats.Service,
	interval BookingStatsInterval,
) *booking_stats.BookingStats {
	return booking_stats.NewBookingStats(log, service, metrics.SetBookingsByStatus, time.Duration(interval))
}

func provideTaskList(
	bookingStatsTask *booking_stats.BookingStats,
) []background.Task {
	return []background.Task{
		bookingStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
