package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"shipease/internal/entities"
	"shipease/internal/repository"
	"shipease/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModify entities.UserModify) (string, error) {
	query := `INSERT INTO users (email, name, type)
		VALUES ($1, $2, $3)
		RETURNING id::text`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		userModify.Email,
		userModify.DisplayName,
		userModify.Type,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", user.ErrUserAlreadyExists
		}
		return "", fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT id::text, email, name, type
		FROM users
		WHERE email = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Name,
			&userModel.Type,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	return r.list(ctx, qb.Select("id::text", "email", "name", "type").From("users"))
}

func (r *Repository) GetByType(ctx context.Context, userType *string) ([]entities.User, error) {
	builder := qb.Select("id::text", "email", "name", "type").From("users")

	if userType == nil {
		builder = builder.Where(sq.Eq{"type": nil})
	} else {
		builder = builder.Where(sq.Eq{"type": *userType})
	}

	return r.list(ctx, builder)
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.User, error) {
	query, args, err := builder.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		if err := rows.Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Name,
			&userModel.Type,
		); err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) SetType(ctx context.Context, id string, userType string) (*entities.UpdateResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, user.ErrInvalidUserID
	}

	query, args, err := qb.
		Update("users").
		Set("type", userType).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("type IS DISTINCT FROM ?", userType)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository settype error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository settype error: %w", err)
	}

	if modified := tag.RowsAffected(); modified > 0 {
		return &entities.UpdateResult{
			MatchedCount:  modified,
			ModifiedCount: modified,
		}, nil
	}

	// повторное повышение: строка есть, но не изменилась
	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository settype error: %w", err)
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}

	return &entities.UpdateResult{MatchedCount: 1}, nil
}
