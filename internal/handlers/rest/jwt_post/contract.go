//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jwt_post_test
package jwt_post

import (
	"shipease/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Issue(payload map[string]any) (string, error)
}
