package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

// Register создает пользователя, если email еще не занят.
// Повторная регистрация возвращает ErrUserAlreadyExists, в том числе когда
// параллельная вставка проиграла гонку уникальному индексу хранилища.
func (s *Service) Register(ctx context.Context, userModify entities.UserModify) (string, error) {
	if userModify.Email == nil || strings.TrimSpace(*userModify.Email) == "" {
		return "", ErrMissingRequiredFields
	}
	// роли admin и DeliveryMen выдаются только через PATCH /users/{admin,deliveryMen}/{id}
	if userModify.Type != nil && entities.ParseRole(*userModify.Type) != entities.RolePlain {
		return "", ErrInvalidUserType
	}

	_, err := s.repository.GetByEmail(ctx, *userModify.Email)
	switch {
	case err == nil:
		return "", ErrUserAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		return "", fmt.Errorf("register user: %w", err)
	}

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return "", fmt.Errorf("register user: %w", err)
	}
	return id, nil
}

// ResolveRole отсутствующий пользователь или пустой type дают RolePlain.
// Каждый вызов идет в хранилище, результат не кешируется.
func (s *Service) ResolveRole(ctx context.Context, email string) (entities.Role, error) {
	u, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return entities.RolePlain, nil
		}
		return entities.RolePlain, fmt.Errorf("resolve role: %w", err)
	}
	return u.Role(), nil
}

func (s *Service) hasRole(ctx context.Context, email string, role entities.Role) (bool, error) {
	resolved, err := s.ResolveRole(ctx, email)
	if err != nil {
		return false, err
	}
	return resolved == role, nil
}

func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, entities.RoleAdmin)
}

func (s *Service) IsDeliveryMan(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, entities.RoleDeliveryPerson)
}

func (s *Service) Promote(ctx context.Context, id string, role entities.Role) (*entities.UpdateResult, error) {
	if role != entities.RoleAdmin && role != entities.RoleDeliveryPerson {
		return nil, ErrInvalidUserType
	}

	res, err := s.repository.SetType(ctx, id, role.String())
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}
	return res, nil
}

func (s *Service) ListAll(ctx context.Context) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// ListByType пустой userType выбирает пользователей без типа.
func (s *Service) ListByType(ctx context.Context, userType string) ([]entities.User, error) {
	var filter *string
	if userType != "" {
		filter = &userType
	}

	users, err := s.repository.GetByType(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by type: %w", err)
	}
	return users, nil
}
