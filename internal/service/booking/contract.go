//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"shipease/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, fields entities.BookingFields) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Booking, error)
	List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, error)
	// Replace перезаписывает все поля кроме id, nil пишется как null.
	Replace(ctx context.Context, id string, fields entities.BookingFields) (*entities.UpdateResult, error)
	// UpdateStatus пишет только заданные поля, без upsert.
	UpdateStatus(ctx context.Context, id string, modify entities.BookingStatusModify) (*entities.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
