//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timeout_test
package timeout

import "shipease/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
