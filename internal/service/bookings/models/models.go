package models

import (
	"errors"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidParticipantStatus возвращается при некорректном ответе участника
	ErrInvalidParticipantStatus = errors.New("invalid participant status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID   int64   `json:"userId"`
	CallerID int64   `json:"callerId"`
	Status   *string `json:"status,omitempty"`
}

// GetClubBookingsRequest запрос администратора на выборку бронирований клуба
type GetClubBookingsRequest struct {
	CallerID         int64      `json:"callerId"`
	CourtID          *int64     `json:"courtId,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetClubBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		CourtID:          r.CourtID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// RespondParticipationRequest ответ участника на приглашение
type RespondParticipationRequest struct {
	BookingID int64  `json:"bookingId"`
	UserID    int64  `json:"userId"`
	Status    string `json:"status"` // accepted | declined
}

// Response модели

// ParticipantResponse участник бронирования
type ParticipantResponse struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// BookingResponse бронирование
type BookingResponse struct {
	ID                 int64                 `json:"id"`
	CourtID            int64                 `json:"courtId"`
	UserID             int64                 `json:"userId"`
	BookingDate        string                `json:"bookingDate"`
	StartTime          string                `json:"startTime"`
	EndTime            string                `json:"endTime"`
	PlayersCount       int                   `json:"playersCount"`
	Status             string                `json:"status"`
	PaymentStatus      string                `json:"paymentStatus"`
	PaymentStatusLabel string                `json:"paymentStatusLabel"`
	PaymentStatusColor string                `json:"paymentStatusColor"`
	TotalAmount        int64                 `json:"totalAmount"`
	AmountPaid         int64                 `json:"amountPaid"`
	OriginalAmount     *int64                `json:"originalAmount,omitempty"`
	PromotionDiscount  *int64                `json:"promotionDiscount,omitempty"`
	CreatedByAdmin     bool                  `json:"createdByAdmin"`
	BookingCode        string                `json:"bookingCode"`
	CancelledAt        *time.Time            `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	Participants       []ParticipantResponse `json:"participants,omitempty"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Converters

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// ToDomainParticipantStatus конвертирует ответ участника в domain статус
// Допустимы только терминальные статусы - pending нельзя выставить ответом
func ToDomainParticipantStatus(status string) (domain.ParticipantStatus, error) {
	switch domain.ParticipantStatus(status) {
	case domain.ParticipantAccepted, domain.ParticipantDeclined:
		return domain.ParticipantStatus(status), nil
	default:
		return "", ErrInvalidParticipantStatus
	}
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	statusInfo := domain.PaymentStatusTable[booking.PaymentStatus]

	return &BookingResponse{
		ID:                 booking.ID,
		CourtID:            booking.CourtID,
		UserID:             booking.UserID,
		BookingDate:        booking.BookingDate.Format(domain.DateFormat),
		StartTime:          booking.StartTime.String(),
		EndTime:            booking.EndTime.String(),
		PlayersCount:       booking.PlayersCount,
		Status:             string(booking.Status),
		PaymentStatus:      string(booking.PaymentStatus),
		PaymentStatusLabel: statusInfo.Label,
		PaymentStatusColor: statusInfo.Color,
		TotalAmount:        booking.TotalAmountCents,
		AmountPaid:         booking.AmountPaidCents,
		OriginalAmount:     booking.OriginalAmountCents,
		PromotionDiscount:  booking.PromotionDiscount,
		CreatedByAdmin:     booking.CreatedByAdmin,
		BookingCode:        booking.BookingCode,
		CancelledAt:        booking.CancelledAt,
		CreatedAt:          booking.CreatedAt,
	}
}

// FromDomainBookingWithParticipants конвертирует бронирование вместе с участниками
func FromDomainBookingWithParticipants(booking *domain.Booking, participants []*domain.Participant) *BookingResponse {
	response := FromDomainBooking(booking)

	response.Participants = make([]ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		response.Participants = append(response.Participants, ParticipantResponse{
			UserID: p.UserID,
			Status: string(p.Status),
		})
	}

	return response
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}

	for _, booking := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(booking))
	}

	return result
}
