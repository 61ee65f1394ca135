//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_bookings_get_test
package delivery_bookings_get

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
	ListByDeliveryMan(ctx context.Context, deliveryMenID string) ([]entities.Booking, error)
}
