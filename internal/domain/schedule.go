package domain

import (
	"time"

	"github.com/padelio/PDL-BookingService/pkg/types"
)

// OpeningHours расписание работы клуба на день недели
// DayOfWeek использует нумерацию time.Weekday: 0 = воскресенье ... 6 = суббота
type OpeningHours struct {
	ID        int64
	DayOfWeek int
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Holiday закрытие клуба на дату или диапазон дат
// EndDate == nil означает закрытие на один день
type Holiday struct {
	ID        int64
	Date      time.Time
	EndDate   *time.Time
	Reason    string
	CreatedAt time.Time
}

// Covers возвращает true, если дата попадает в диапазон закрытия (включительно)
func (h *Holiday) Covers(date time.Time) bool {
	day := truncateToDay(date)
	start := truncateToDay(h.Date)

	end := start
	if h.EndDate != nil {
		end = truncateToDay(*h.EndDate)
	}

	return !day.Before(start) && !day.After(end)
}

// DayWindow окно работы клуба на конкретную дату
type DayWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// OpenMinutes возвращает длительность окна в минутах
func (w *DayWindow) OpenMinutes() (int, error) {
	open, err := w.Open.Minutes()
	if err != nil {
		return 0, err
	}
	close, err := w.Close.Minutes()
	if err != nil {
		return 0, err
	}
	if close < open {
		return 0, nil
	}
	return close - open, nil
}

// ResolveDayWindow определяет окно работы клуба на дату.
// Праздники/закрытия имеют приоритет над недельным расписанием: если дата
// попадает в диапазон любого Holiday, клуб закрыт независимо от расписания.
// Отсутствие записи расписания для дня недели трактуется как закрытый день.
// Возвращает nil, если клуб закрыт.
func ResolveDayWindow(date time.Time, hours []*OpeningHours, holidays []*Holiday) *DayWindow {
	for _, h := range holidays {
		if h.Covers(date) {
			return nil
		}
	}

	weekday := int(date.Weekday())
	for _, oh := range hours {
		if oh.DayOfWeek != weekday {
			continue
		}
		if oh.IsClosed || oh.OpenTime.IsZero() || oh.CloseTime.IsZero() {
			return nil
		}
		return &DayWindow{Open: oh.OpenTime, Close: oh.CloseTime}
	}

	// Нет конфигурации для дня недели - считаем день закрытым
	return nil
}

// IsClosedDay возвращает true, если клуб закрыт на указанную дату
func IsClosedDay(date time.Time, hours []*OpeningHours, holidays []*Holiday) bool {
	return ResolveDayWindow(date, hours, holidays) == nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
