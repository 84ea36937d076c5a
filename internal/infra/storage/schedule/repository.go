package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/dbmetrics"
	"github.com/padelio/PDL-BookingService/pkg/psqlbuilder"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// Repository репозиторий расписания работы клуба и закрытий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOpeningHours получает недельное расписание работы клуба
func (r *Repository) GetOpeningHours(ctx context.Context) ([]*domain.OpeningHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
		"created_at",
		"updated_at",
	).
		From("opening_hours").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.OpeningHours, 0, 7)

	for rows.Next() {
		var oh domain.OpeningHours
		var openTime, closeTime sql.NullString
		var createdAt, updatedAt sql.NullTime

		err = rows.Scan(
			&oh.ID,
			&oh.DayOfWeek,
			&openTime,
			&closeTime,
			&oh.IsClosed,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetOpeningHours - scan row: %v", ErrScanRow, err)
		}

		if openTime.Valid {
			oh.OpenTime = trimTimeString(openTime.String)
		}
		if closeTime.Valid {
			oh.CloseTime = trimTimeString(closeTime.String)
		}
		oh.CreatedAt = createdAt.Time
		oh.UpdatedAt = updatedAt.Time

		hours = append(hours, &oh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// UpsertOpeningHours создает или обновляет расписание на день недели
func (r *Repository) UpsertOpeningHours(ctx context.Context, oh *domain.OpeningHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("opening_hours").
		Columns("day_of_week", "open_time", "close_time", "is_closed").
		Values(oh.DayOfWeek, oh.OpenTime, oh.CloseTime, oh.IsClosed).
		Suffix(`ON CONFLICT (day_of_week) DO UPDATE
			SET open_time = EXCLUDED.open_time,
			    close_time = EXCLUDED.close_time,
			    is_closed = EXCLUDED.is_closed,
			    updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertOpeningHours - build upsert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpsertOpeningHours - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetHolidaysInRange получает закрытия клуба, пересекающиеся с периодом [start, end]
func (r *Repository) GetHolidaysInRange(ctx context.Context, start, end time.Time) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"end_date",
		"reason",
		"created_at",
	).
		From("holidays").
		Where(squirrel.LtOrEq{"date": end}).
		Where(squirrel.Or{
			squirrel.GtOrEq{"end_date": start},
			squirrel.And{
				squirrel.Eq{"end_date": nil},
				squirrel.GtOrEq{"date": start},
			},
		}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidaysInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidaysInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)

	for rows.Next() {
		var holiday domain.Holiday
		var endDate, createdAt sql.NullTime

		err = rows.Scan(
			&holiday.ID,
			&holiday.Date,
			&endDate,
			&holiday.Reason,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetHolidaysInRange - scan row: %v", ErrScanRow, err)
		}

		if endDate.Valid {
			holiday.EndDate = &endDate.Time
		}
		holiday.CreatedAt = createdAt.Time

		holidays = append(holidays, &holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHolidaysInRange - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// CreateHoliday создает закрытие клуба на дату или диапазон дат
func (r *Repository) CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns("date", "end_date", "reason").
		Values(holiday.Date, holiday.EndDate, holiday.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&holiday.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - execute insert: %v", ErrExecQuery, err)
	}

	holiday.CreatedAt = createdAt.Time

	return holiday, nil
}

// DeleteHoliday удаляет закрытие клуба
func (r *Repository) DeleteHoliday(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holidays").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHolidayNotFound
	}

	return nil
}

// trimTimeString обрезает секунды из значения колонки TIME ("09:00:00" -> "09:00")
func trimTimeString(value string) types.TimeString {
	if len(value) > 5 {
		value = value[:5]
	}
	return types.TimeString(value)
}
