package create_booking

import (
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64            // организатор (из заголовка авторизации)
	CourtID      int64            // корт
	Date         time.Time        // дата игры
	StartTime    types.TimeString // время начала
	Participants []int64          // приглашенные участники (без организатора)
}

// Response модель созданного бронирования
type Response struct {
	ID                 int64      `json:"id"`
	CourtID            int64      `json:"courtId"`
	UserID             int64      `json:"userId"`
	BookingDate        string     `json:"bookingDate"`
	StartTime          string     `json:"startTime"`
	EndTime            string     `json:"endTime"`
	PlayersCount       int        `json:"playersCount"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus"`
	PaymentStatusLabel string     `json:"paymentStatusLabel"`
	TotalAmount        int64      `json:"totalAmount"`
	OriginalAmount     *int64     `json:"originalAmount,omitempty"`
	PromotionDiscount  *int64     `json:"promotionDiscount,omitempty"`
	CreatedByAdmin     bool       `json:"createdByAdmin"`
	BookingCode        string     `json:"bookingCode"`
	Participants       []int64    `json:"participants,omitempty"`
	PaymentClientSecret *string   `json:"paymentClientSecret,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// fromDomainBooking собирает response из созданного бронирования
func fromDomainBooking(booking *domain.Booking, participantIDs []int64, clientSecret *string) *Response {
	return &Response{
		ID:                  booking.ID,
		CourtID:             booking.CourtID,
		UserID:              booking.UserID,
		BookingDate:         booking.BookingDate.Format(domain.DateFormat),
		StartTime:           booking.StartTime.String(),
		EndTime:             booking.EndTime.String(),
		PlayersCount:        booking.PlayersCount,
		Status:              string(booking.Status),
		PaymentStatus:       string(booking.PaymentStatus),
		PaymentStatusLabel:  domain.PaymentStatusTable[booking.PaymentStatus].Label,
		TotalAmount:         booking.TotalAmountCents,
		OriginalAmount:      booking.OriginalAmountCents,
		PromotionDiscount:   booking.PromotionDiscount,
		CreatedByAdmin:      booking.CreatedByAdmin,
		BookingCode:         booking.BookingCode,
		Participants:        participantIDs,
		PaymentClientSecret: clientSecret,
		CreatedAt:           booking.CreatedAt,
	}
}
