package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/dbmetrics"
	"github.com/padelio/PDL-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий глобальных настроек клуба
// Таблица club_settings содержит не более одной строки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки клуба
// Возвращает ErrSettingsNotFound, если администратор еще не создал настройки
func (r *Repository) Get(ctx context.Context) (*domain.ClubSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"game_duration_minutes",
		"payment_timeout_hours",
		"cancellation_notice_hours",
		"created_at",
		"updated_at",
	).
		From("club_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.ClubSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.GameDurationMinutes,
		&settings.PaymentTimeoutHours,
		&settings.CancellationNoticeHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Upsert создает или обновляет настройки клуба
func (r *Repository) Upsert(ctx context.Context, settings *domain.ClubSettings) (*domain.ClubSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("club_settings").
		Columns("id", "game_duration_minutes", "payment_timeout_hours", "cancellation_notice_hours").
		Values(1, settings.GameDurationMinutes, settings.PaymentTimeoutHours, settings.CancellationNoticeHours).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET game_duration_minutes = EXCLUDED.game_duration_minutes,
			    payment_timeout_hours = EXCLUDED.payment_timeout_hours,
			    cancellation_notice_hours = EXCLUDED.cancellation_notice_hours,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&settings.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}
