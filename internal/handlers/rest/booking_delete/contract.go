//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_delete_test
package booking_delete

import (
	"context"

	"shipease/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteBooking(ctx context.Context, id string) (int64, error)
}
