package domain

import "github.com/padelio/PDL-BookingService/pkg/types"

// Slot бронируемый временной интервал на конкретном корте
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	BookingID *int64 // занявшее бронирование, если слот занят
}

// GenerateSlots нарезает окно работы на слоты фиксированной длительности.
// Слот попадает в результат только если целиком помещается до закрытия:
// остаток окна короче длительности игры не превращается в усеченный слот.
func GenerateSlots(window DayWindow, durationMinutes int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	current := window.Open
	for current.IsBefore(window.Close) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		if end.IsAfter(window.Close) {
			break
		}

		slots = append(slots, current)

		current, err = current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// FindOccupying возвращает подтвержденное бронирование, занимающее слот
// с указанным началом, либо nil. Отмененные бронирования слоты не занимают.
func FindOccupying(bookings []*Booking, courtID int64, slotStart types.TimeString) *Booking {
	for _, b := range bookings {
		if b.CourtID != courtID || !b.IsActive() {
			continue
		}
		if b.Occupies(slotStart) {
			return b
		}
	}
	return nil
}

// HasOverlap возвращает первое подтвержденное бронирование корта,
// пересекающееся с интервалом [start, end), либо nil
func HasOverlap(bookings []*Booking, courtID int64, start, end types.TimeString) *Booking {
	for _, b := range bookings {
		if b.CourtID != courtID || !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}
