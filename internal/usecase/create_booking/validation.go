package create_booking

import (
	"fmt"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// validateRequest проверяет корректность запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	return nil
}

// validateDate проверяет, что дата игры не в прошлом
func validateDate(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	return nil
}

// validateSlotWindow проверяет, что игра целиком помещается в окно работы клуба
func validateSlotWindow(window *domain.DayWindow, start, end types.TimeString) error {
	if start.IsBefore(window.Open) {
		return fmt.Errorf("%w: starts before opening at %s", ErrOutsideOpeningHours, window.Open)
	}
	if end.IsAfter(window.Close) {
		return fmt.Errorf("%w: ends after closing at %s", ErrOutsideOpeningHours, window.Close)
	}
	return nil
}
