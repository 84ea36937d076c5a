package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/dbmetrics"
	"github.com/padelio/PDL-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"court_id",
	"user_id",
	"booking_date",
	"start_time",
	"end_time",
	"players_count",
	"status",
	"payment_status",
	"total_amount",
	"amount_paid",
	"original_amount",
	"promotion_id",
	"promotion_discount",
	"created_by_admin",
	"booking_code",
	"payment_intent_id",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями и их участниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Эксклюзивность слота дополнительно гарантируется exclusion constraint
// bookings_no_overlap на уровне БД - его нарушение маппится в ErrSlotConflict.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"court_id",
			"user_id",
			"booking_date",
			"start_time",
			"end_time",
			"players_count",
			"status",
			"payment_status",
			"total_amount",
			"amount_paid",
			"original_amount",
			"promotion_id",
			"promotion_discount",
			"created_by_admin",
			"booking_code",
		).
		Values(
			booking.CourtID,
			booking.UserID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.PlayersCount,
			booking.Status,
			booking.PaymentStatus,
			booking.TotalAmountCents,
			booking.AmountPaidCents,
			booking.OriginalAmountCents,
			booking.PromotionID,
			booking.PromotionDiscount,
			booking.CreatedByAdmin,
			booking.BookingCode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// по корту, периоду и статусу. Для выборки на конкретную дату внутри
// транзакции добавляет FOR UPDATE - блокировка дня при создании бронирования.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	if singleDate {
		selectBuilder = selectBuilder.OrderBy("court_id ASC, start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date ASC, start_time ASC")
	}

	// Блокируем строки дня только внутри транзакции создания бронирования
	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetExpiredUnpaid получает подтвержденные пользовательские бронирования,
// не оплаченные к моменту cutoff. Внутри транзакции блокирует строки FOR UPDATE.
func (r *Repository) GetExpiredUnpaid(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Eq{"created_by_admin": false}).
		Where(squirrel.Gt{"total_amount": 0}).
		Where(squirrel.Eq{"payment_status": []string{
			string(domain.PaymentPending),
			string(domain.PaymentFailed),
		}}).
		Where(squirrel.Lt{"created_at": cutoff}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredUnpaid - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredUnpaid - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel отменяет бронирование с указанием итогового статуса оплаты
func (r *Repository) Cancel(ctx context.Context, id int64, paymentStatus domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("payment_status", paymentStatus).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CancelBulk отменяет набор бронирований одним запросом
// Используется sweep-джобой: вся пачка отменяется атомарно в транзакции вызывающего
func (r *Repository) CancelBulk(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("payment_status", domain.PaymentCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelBulk - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelBulk - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelBulk - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// UpdatePaymentIntent сохраняет ID платежного интента, привязанного к бронированию
func (r *Repository) UpdatePaymentIntent(ctx context.Context, id int64, intentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_intent_id", intentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentIntent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentIntent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentIntent - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdatePaymentStatus обновляет статус оплаты и сумму оплаченного
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus, amountPaidCents int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("amount_paid", amountPaidCents).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку бронирования
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CourtID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.PlayersCount,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.TotalAmountCents,
		&booking.AmountPaidCents,
		&booking.OriginalAmountCents,
		&booking.PromotionID,
		&booking.PromotionDiscount,
		&booking.CreatedByAdmin,
		&booking.BookingCode,
		&booking.PaymentIntentID,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var cancelledAt, createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.CourtID,
			&booking.UserID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.PlayersCount,
			&booking.Status,
			&booking.PaymentStatus,
			&booking.TotalAmountCents,
			&booking.AmountPaidCents,
			&booking.OriginalAmountCents,
			&booking.PromotionID,
			&booking.PromotionDiscount,
			&booking.CreatedByAdmin,
			&booking.BookingCode,
			&booking.PaymentIntentID,
			&cancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if cancelledAt.Valid {
			booking.CancelledAt = &cancelledAt.Time
		}
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isExclusionViolation проверяет нарушение exclusion/unique constraint
// (гонка двух одновременных бронирований одного слота)
func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23P01" || pqErr.Code == "23505"
}
