//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=users_by_type_get_test
package users_by_type_get

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
	ListByType(ctx context.Context, userType string) ([]entities.User, error)
}
