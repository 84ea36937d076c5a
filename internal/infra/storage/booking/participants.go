package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/dbmetrics"
	"github.com/padelio/PDL-BookingService/pkg/psqlbuilder"
)

var participantColumns = []string{
	"id",
	"booking_id",
	"user_id",
	"status",
	"created_at",
	"updated_at",
}

// AddParticipants добавляет приглашенных участников к бронированию
// Все участники создаются со статусом pending
func (r *Repository) AddParticipants(ctx context.Context, bookingID int64, userIDs []int64) ([]*domain.Participant, error) {
	if len(userIDs) == 0 {
		return []*domain.Participant{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_participants").
		Columns("booking_id", "user_id", "status")

	for _, userID := range userIDs {
		insertBuilder = insertBuilder.Values(bookingID, userID, domain.ParticipantPending)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING " + joinColumns(participantColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddParticipants - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateParticipant
		}
		return nil, fmt.Errorf("%w: AddParticipants - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanParticipants(rows)
}

// GetParticipants получает всех участников бронирования
func (r *Repository) GetParticipants(ctx context.Context, bookingID int64) ([]*domain.Participant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(participantColumns...).
		From("booking_participants").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetParticipants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetParticipants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanParticipants(rows)
}

// GetParticipant получает участника бронирования по ID пользователя
func (r *Repository) GetParticipant(ctx context.Context, bookingID, userID int64) (*domain.Participant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(participantColumns...).
		From("booking_participants").
		Where(squirrel.Eq{"booking_id": bookingID, "user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetParticipant - build select query: %v", ErrBuildQuery, err)
	}

	var participant domain.Participant
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&participant.ID,
		&participant.BookingID,
		&participant.UserID,
		&participant.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetParticipant - scan participant: %v", ErrScanRow, err)
	}

	participant.CreatedAt = createdAt.Time
	participant.UpdatedAt = updatedAt.Time

	return &participant, nil
}

// UpdateParticipantStatus обновляет ответ участника на приглашение
func (r *Repository) UpdateParticipantStatus(ctx context.Context, bookingID, userID int64, status domain.ParticipantStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_participants").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID, "user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateParticipantStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateParticipantStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateParticipantStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// scanParticipants сканирует результаты запроса в слайс участников
func (r *Repository) scanParticipants(rows *sql.Rows) ([]*domain.Participant, error) {
	participants := make([]*domain.Participant, 0)

	for rows.Next() {
		var participant domain.Participant
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&participant.ID,
			&participant.BookingID,
			&participant.UserID,
			&participant.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanParticipants - scan row: %v", ErrScanRow, err)
		}

		participant.CreatedAt = createdAt.Time
		participant.UpdatedAt = updatedAt.Time

		participants = append(participants, &participant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanParticipants - rows error: %v", ErrScanRow, err)
	}

	return participants, nil
}

// isUniqueViolation проверяет нарушение unique constraint
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505"
}

// joinColumns собирает список колонок для суффикса RETURNING
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
