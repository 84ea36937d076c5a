package domain

import (
	"time"

	"github.com/padelio/PDL-BookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentConfirmed        PaymentStatus = "confirmed" // бесплатное/административное бронирование
	PaymentPending          PaymentStatus = "pending_payment"
	PaymentFailed           PaymentStatus = "payment_failed"
	PaymentPartialCompleted PaymentStatus = "partial_payment_completed"
	PaymentCompleted        PaymentStatus = "payment_completed"
	PaymentCancelled        PaymentStatus = "cancelled"
)

// PaymentStatusInfo отображаемые атрибуты статуса оплаты
// Единая таблица для всех поверхностей представления (API, экспорт)
type PaymentStatusInfo struct {
	Label string // человекочитаемая метка (на языке клуба)
	Color string // цветовой код для UI
}

// PaymentStatusTable единственный источник отображения статусов оплаты
var PaymentStatusTable = map[PaymentStatus]PaymentStatusInfo{
	PaymentConfirmed:        {Label: "Confirmé", Color: "green"},
	PaymentPending:          {Label: "En attente de paiement", Color: "orange"},
	PaymentFailed:           {Label: "Paiement échoué", Color: "red"},
	PaymentPartialCompleted: {Label: "Paiement partiel", Color: "blue"},
	PaymentCompleted:        {Label: "Payé", Color: "green"},
	PaymentCancelled:        {Label: "Annulé", Color: "gray"},
}

// Booking бронирование корта
// Подтвержденное бронирование эксклюзивно занимает [StartTime, EndTime)
// на паре (CourtID, BookingDate)
type Booking struct {
	ID           int64
	CourtID      int64
	UserID       int64 // организатор
	BookingDate  time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	PlayersCount int

	Status        BookingStatus
	PaymentStatus PaymentStatus

	TotalAmountCents    int64
	AmountPaidCents     int64
	OriginalAmountCents *int64 // цена до скидки, если применена акция
	PromotionID         *int64
	PromotionDiscount   *int64 // размер скидки в центах

	CreatedByAdmin  bool
	BookingCode     string
	PaymentIntentID *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive возвращает true, если бронирование подтверждено
// Только активные бронирования занимают слоты
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// AwaitingPayment возвращает true, если бронирование ждет оплаты
func (b *Booking) AwaitingPayment() bool {
	return b.PaymentStatus == PaymentPending || b.PaymentStatus == PaymentFailed
}

// Occupies возвращает true, если слот с указанным началом попадает
// в интервал бронирования: StartTime <= slotStart < EndTime
func (b *Booking) Occupies(slotStart types.TimeString) bool {
	return !b.StartTime.IsAfter(slotStart) && slotStart.IsBefore(b.EndTime)
}

// Overlaps возвращает true, если интервал [start, end) пересекается
// с интервалом бронирования. Граничащие интервалы не пересекаются.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	CourtID          *int64
	StartDate        *time.Time     // начало периода (опционально)
	EndDate          *time.Time     // конец периода (опционально)
	Status           *BookingStatus // фильтр по статусу (опционально)
	IncludeCancelled bool           // включать ли отмененные при отсутствии фильтра по статусу
}
