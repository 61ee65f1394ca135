package booking

import (
	"context"
	"fmt"

	"shipease/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// CreateBooking сохраняет посылку как есть, без проверки владельца и схемы.
func (s *Service) CreateBooking(ctx context.Context, fields entities.BookingFields) (string, error) {
	id, err := s.repository.Create(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	return id, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*entities.Booking, error) {
	booking, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

func (s *Service) ListByOwner(ctx context.Context, email string) ([]entities.Booking, error) {
	return s.list(ctx, entities.BookingFilter{Email: &email})
}

func (s *Service) ListAll(ctx context.Context) ([]entities.Booking, error) {
	return s.list(ctx, entities.BookingFilter{})
}

func (s *Service) ListByDeliveryMan(ctx context.Context, deliveryMenID string) ([]entities.Booking, error) {
	return s.list(ctx, entities.BookingFilter{DeliveryMenID: &deliveryMenID})
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]entities.Booking, error) {
	return s.list(ctx, entities.BookingFilter{Status: &status})
}

func (s *Service) list(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, error) {
	bookings, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ReplaceEditableFields полная перезапись: поля, которых нет в запросе, становятся null.
func (s *Service) ReplaceEditableFields(ctx context.Context, id string, fields entities.BookingFields) (*entities.UpdateResult, error) {
	res, err := s.repository.Replace(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("replace booking: %w", err)
	}
	return res, nil
}

// UpdateStatusAndAssignment обновление администратором: статус, примерная дата и курьер.
// Несуществующий id дает ErrBookingNotFound, документ не создается.
func (s *Service) UpdateStatusAndAssignment(ctx context.Context, id string, modify entities.BookingStatusModify) (*entities.UpdateResult, error) {
	if modify.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	res, err := s.repository.UpdateStatus(ctx, id, modify)
	if err != nil {
		return nil, fmt.Errorf("update booking status and assignment: %w", err)
	}
	return res, nil
}

// UpdateStatusOnly обновление курьером, остальные поля не трогаются.
func (s *Service) UpdateStatusOnly(ctx context.Context, id string, status *string) (*entities.UpdateResult, error) {
	if status == nil {
		return nil, fmt.Errorf("status is required: %w", ErrMissingRequiredFields)
	}

	res, err := s.repository.UpdateStatus(ctx, id, entities.BookingStatusModify{Status: status})
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return res, nil
}

// DeleteBooking возвращает количество удаленных документов (0 или 1).
func (s *Service) DeleteBooking(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete booking: %w", err)
	}
	return deleted, nil
}

func (s *Service) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings by status: %w", err)
	}
	return counts, nil
}
