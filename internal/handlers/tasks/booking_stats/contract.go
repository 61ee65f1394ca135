//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_stats_test
package booking_stats

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
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
