//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=access_gate_test
package access_gate

import (
	"context"

	"shipease/internal/entities"
	"shipease/pkg/logger"
)

type Verifier interface {
	Verify(token string) (*entities.Claims, error)
}

type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (entities.Role, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
