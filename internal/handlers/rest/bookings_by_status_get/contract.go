//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bookings_by_status_get_test
package bookings_by_status_get

import (
	"context"

	"shipease/internal/entities"
	"shipease/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListByStatus(ctx context.Context, status string) ([]entities.Booking, error)
}
