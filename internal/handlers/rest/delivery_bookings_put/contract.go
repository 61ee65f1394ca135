//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_bookings_put_test
package delivery_bookings_put

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
	UpdateStatusOnly(ctx context.Context, id string, status *string) (*entities.UpdateResult, error)
}
