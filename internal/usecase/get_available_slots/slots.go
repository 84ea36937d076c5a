package get_available_slots

import (
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// buildCourtSlots собирает сетку слотов одного корта с занятостью и ценой
func buildCourtSlots(
	court *domain.Court,
	slotStarts []types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
	promotions []*domain.Promotion,
	date time.Time,
) CourtSlots {
	promotion := domain.PickPromotion(promotions, court.ID, date)
	price := domain.ApplyDiscount(court.PriceCents, promotion)

	result := CourtSlots{
		CourtID:   court.ID,
		CourtName: court.Name,
		BasePrice: court.PriceCents,
		Price:     price,
		Slots:     make([]Slot, 0, len(slotStarts)),
	}

	if promotion != nil {
		result.PromotionName = &promotion.Name
	}

	for _, start := range slotStarts {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		slot := Slot{
			StartTime: start,
			EndTime:   end,
			Available: true,
		}

		if occupying := domain.FindOccupying(bookings, court.ID, start); occupying != nil {
			slot.Available = false
			slot.BookingID = &occupying.ID
		}

		result.Slots = append(result.Slots, slot)
	}

	return result
}
