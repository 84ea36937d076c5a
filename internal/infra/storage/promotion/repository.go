package promotion

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/dbmetrics"
	"github.com/padelio/PDL-BookingService/pkg/psqlbuilder"
)

var promotionColumns = []string{
	"id",
	"name",
	"discount_type",
	"discount_value",
	"court_id",
	"start_date",
	"end_date",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с акциями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория акций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую акцию
func (r *Repository) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promotions").
		Columns("name", "discount_type", "discount_value", "court_id", "start_date", "end_date", "is_active").
		Values(
			promotion.Name,
			promotion.DiscountType,
			promotion.DiscountValue,
			promotion.CourtID,
			promotion.StartDate,
			promotion.EndDate,
			promotion.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&promotion.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promotion.CreatedAt = createdAt.Time
	promotion.UpdatedAt = updatedAt.Time

	return promotion, nil
}

// List получает все акции
func (r *Repository) List(ctx context.Context) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPromotions(rows)
}

// GetActiveOn получает акции, действующие в указанный момент времени
// Возвращает и клубные акции, и акции конкретных кортов - выбор
// подходящей акции выполняется на уровне домена
func (r *Repository) GetActiveOn(ctx context.Context, at time.Time) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"start_date": at}).
		Where(squirrel.GtOrEq{"end_date": at}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOn - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOn - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPromotions(rows)
}

// Deactivate помечает акцию неактивной
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promotions").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromotionNotFound
	}

	return nil
}

// scanPromotions сканирует результаты запроса в слайс акций
func (r *Repository) scanPromotions(rows *sql.Rows) ([]*domain.Promotion, error) {
	promotions := make([]*domain.Promotion, 0)

	for rows.Next() {
		var promotion domain.Promotion
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&promotion.ID,
			&promotion.Name,
			&promotion.DiscountType,
			&promotion.DiscountValue,
			&promotion.CourtID,
			&promotion.StartDate,
			&promotion.EndDate,
			&promotion.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPromotions - scan row: %v", ErrScanRow, err)
		}

		promotion.CreatedAt = createdAt.Time
		promotion.UpdatedAt = updatedAt.Time

		promotions = append(promotions, &promotion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPromotions - rows error: %v", ErrScanRow, err)
	}

	return promotions, nil
}
