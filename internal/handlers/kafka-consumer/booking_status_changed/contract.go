//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_status_changed_test
package booking_status_changed

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
	UpdateStatusAndAssignment(ctx context.Context, id string, modify entities.BookingStatusModify) (*entities.UpdateResult, error)
	UpdateStatusOnly(ctx context.Context, id string, status *string) (*entities.UpdateResult, error)
}
