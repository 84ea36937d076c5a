package get_available_slots

import (
	"github.com/padelio/PDL-BookingService/internal/domain"
	getAvailableSlots "github.com/padelio/PDL-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse один игровой слот
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

// CourtSlotsResponse сетка слотов одного корта
type CourtSlotsResponse struct {
	CourtID       int64          `json:"courtId"`
	CourtName     string         `json:"courtName"`
	BasePrice     int64          `json:"basePrice"`
	Price         int64          `json:"price"`
	PromotionName *string        `json:"promotionName,omitempty"`
	Slots         []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string               `json:"date"`
	Closed          bool                 `json:"closed"`
	DurationMinutes int                  `json:"durationMinutes"`
	Courts          []CourtSlotsResponse `json:"courts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	courts := make([]CourtSlotsResponse, 0, len(resp.Courts))
	for _, court := range resp.Courts {
		slots := make([]SlotResponse, 0, len(court.Slots))
		for _, slot := range court.Slots {
			slots = append(slots, SlotResponse{
				StartTime: slot.StartTime.String(),
				EndTime:   slot.EndTime.String(),
				Available: slot.Available,
				BookingID: slot.BookingID,
			})
		}
		courts = append(courts, CourtSlotsResponse{
			CourtID:       court.CourtID,
			CourtName:     court.CourtName,
			BasePrice:     court.BasePrice,
			Price:         court.Price,
			PromotionName: court.PromotionName,
			Slots:         slots,
		})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Closed:          resp.Closed,
		DurationMinutes: resp.DurationMinutes,
		Courts:          courts,
	}
}
