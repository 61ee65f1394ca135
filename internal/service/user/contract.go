//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"shipease/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModify entities.UserModify) (string, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	// GetByType nil выбирает пользователей без типа.
	GetByType(ctx context.Context, userType *string) ([]entities.User, error)
	SetType(ctx context.Context, id string, userType string) (*entities.UpdateResult, error)
}
