//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_patch_test
package booking_patch

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
	ReplaceEditableFields(ctx context.Context, id string, fields entities.BookingFields) (*entities.UpdateResult, error)
}
