package domain

import (
	"fmt"
	"time"
)

// StatsGroupBy период группировки статистики
type StatsGroupBy string

const (
	GroupByDay   StatsGroupBy = "day"
	GroupByWeek  StatsGroupBy = "week"
	GroupByMonth StatsGroupBy = "month"
	GroupByYear  StatsGroupBy = "year"
)

// Valid проверяет допустимость периода группировки
func (g StatsGroupBy) Valid() bool {
	switch g {
	case GroupByDay, GroupByWeek, GroupByMonth, GroupByYear:
		return true
	}
	return false
}

// StatsBucket агрегат статистики за период (вычисляется, не хранится)
type StatsBucket struct {
	PeriodKey     string
	BookingsCount int
	TotalSlots    int     // теоретическая вместимость периода
	OccupancyRate float64 // bookings / max(slots, 1) * 100
	RevenueEuros  float64 // сумма total_amount/100 подтвержденных бронирований
}

// PeriodKey вычисляет ключ периода для даты.
// Ключи лексикографически сортируются в хронологическом порядке:
// day - ISO-дата, week - ISO-дата понедельника недели, month - YYYY-MM, year - YYYY.
func PeriodKey(date time.Time, groupBy StatsGroupBy) string {
	switch groupBy {
	case GroupByWeek:
		return mondayOfWeek(date).Format(DateFormat)
	case GroupByMonth:
		return date.Format("2006-01")
	case GroupByYear:
		return date.Format("2006")
	default:
		return date.Format(DateFormat)
	}
}

// mondayOfWeek возвращает понедельник недели, содержащей дату
func mondayOfWeek(date time.Time) time.Time {
	day := truncateToDay(date)
	// time.Weekday: воскресенье = 0, понедельник = 1
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// TheoreticalSlots возвращает теоретическое число слотов на день:
// floor(минуты работы / 30) на каждый активный корт; 0 для закрытого дня
func TheoreticalSlots(window *DayWindow, activeCourts int) (int, error) {
	if window == nil || activeCourts <= 0 {
		return 0, nil
	}
	minutes, err := window.OpenMinutes()
	if err != nil {
		return 0, fmt.Errorf("stats: invalid day window: %w", err)
	}
	return minutes / StatsSlotMinutes * activeCourts, nil
}
