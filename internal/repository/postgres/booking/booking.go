package booking

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"shipease/internal/entities"
	"shipease/internal/service/booking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var selectColumns = append([]string{"id::text"}, editableColumns...)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, fields entities.BookingFields) (string, error) {
	bookingModel := FromDomainFields(&fields)

	query, args, err := qb.
		Insert("bookings").
		Columns(editableColumns...).
		Values(bookingModel.values()...).
		Suffix("RETURNING id::text").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	var id string
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, booking.ErrInvalidBookingID
	}

	query, args, err := qb.
		Select(selectColumns...).
		From("bookings").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository getbyid error: %w", err)
	}

	var bookingModel BookingDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(bookingModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository getbyid error: %w", err)
	}

	return ToDomain(&bookingModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, error) {
	builder := qb.
		Select(selectColumns...).
		From("bookings")

	// опциональные фильтры
	if filter.Email != nil {
		builder = builder.Where(sq.Eq{"email": *filter.Email})
	}
	if filter.DeliveryMenID != nil {
		builder = builder.Where(sq.Eq{"delivery_men_id": *filter.DeliveryMenID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}

	query, args, err := builder.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}
	defer rows.Close()

	bookingModels := make([]BookingDB, 0, 8)
	for rows.Next() {
		var bookingModel BookingDB
		if err := rows.Scan(bookingModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
		}
		bookingModels = append(bookingModels, bookingModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}

	return ToDomainList(bookingModels), nil
}

func (r *Repository) Replace(ctx context.Context, id string, fields entities.BookingFields) (*entities.UpdateResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, booking.ErrInvalidBookingID
	}

	bookingModel := FromDomainFields(&fields)

	return r.update(ctx, id, editableColumns, bookingModel.values())
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, modify entities.BookingStatusModify) (*entities.UpdateResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, booking.ErrInvalidBookingID
	}

	columns := make([]string, 0, 3)
	values := make([]interface{}, 0, 3)

	if modify.Status != nil {
		columns = append(columns, "status")
		values = append(values, modify.Status)
	}
	if modify.ApproximateDate != nil {
		columns = append(columns, "approximate_date")
		values = append(values, modify.ApproximateDate)
	}
	if modify.DeliveryMenID != nil {
		columns = append(columns, "delivery_men_id")
		values = append(values, modify.DeliveryMenID)
	}

	return r.update(ctx, id, columns, values)
}

// update пишет строку, только если хотя бы одна колонка меняется: ModifiedCount
// совпадает с тем, что вернул бы документный драйвер. Совпавшая, но не измененная строка
// дает MatchedCount 1 и ModifiedCount 0.
func (r *Repository) update(ctx context.Context, id string, columns []string, values []interface{}) (*entities.UpdateResult, error) {
	builder := qb.Update("bookings")
	changed := make(sq.Or, 0, len(columns))
	for i, column := range columns {
		builder = builder.Set(column, values[i])
		changed = append(changed, sq.Expr(column+" IS DISTINCT FROM ?", values[i]))
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(changed).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	if modified := tag.RowsAffected(); modified > 0 {
		return &entities.UpdateResult{
			MatchedCount:  modified,
			ModifiedCount: modified,
		}, nil
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}
	if !exists {
		return nil, booking.ErrBookingNotFound
	}

	return &entities.UpdateResult{MatchedCount: 1}, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, booking.ErrInvalidBookingID
	}

	query := `DELETE FROM bookings WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository delete error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	query := `
	SELECT COALESCE(status, $1) AS status, COUNT(*)
	FROM bookings
	GROUP BY 1`

	rows, err := r.querier.Query(ctx, query, entities.BookingStatusNone)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected booking repository count error: %w", err)
		}
		counts[status] += count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository count error: %w", err)
	}

	return counts, nil
}
