package create_booking

import (
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	createBooking "github.com/padelio/PDL-BookingService/internal/usecase/create_booking"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID      int64   `json:"courtId"`
	BookingDate  string  `json:"bookingDate"` // "2026-07-15"
	StartTime    string  `json:"startTime"`   // "10:00"
	Participants []int64 `json:"participants,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		CourtID:      r.CourtID,
		Date:         bookingDate,
		StartTime:    startTime,
		Participants: r.Participants,
	}, nil
}
