package emaillog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/dbmetrics"
	"github.com/padelio/PDL-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий аудита отправленных писем
// Только запись: журнал читается напрямую администраторами через БД
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала писем
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create фиксирует попытку отправки письма
func (r *Repository) Create(ctx context.Context, log *domain.EmailLog) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("email_log").
		Columns("recipient_email", "event_type", "template_id", "booking_id", "status", "error").
		Values(log.RecipientEmail, log.EventType, log.TemplateID, log.BookingID, log.Status, log.Error).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&log.ID, &createdAt)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	log.CreatedAt = createdAt.Time

	return nil
}
