package get_available_slots

import "fmt"

// validateRequest проверяет корректность запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if req.CourtID != nil && *req.CourtID <= 0 {
		return fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}
	return nil
}
