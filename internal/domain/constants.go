package domain

// Значения настроек клуба по умолчанию
const (
	DefaultGameDurationMinutes     = 90
	DefaultPaymentTimeoutHours     = 24
	DefaultCancellationNoticeHours = 2
)

// Ограничения бизнес-валидации
const (
	MinGameDurationMinutes = 30
	MaxGameDurationMinutes = 240
	MinPaymentTimeoutHours = 1
	MaxPaymentTimeoutHours = 168 // неделя

	MinCancellationNoticeHours = 0
	MaxCancellationNoticeHours = 72

	MinCourtCapacity = 2
	MaxCourtCapacity = 4

	MaxPercentageDiscount = 100
)

// StatsSlotMinutes номинальная длительность слота для расчета теоретической
// вместимости в статистике. Фиксирована и не зависит от настроенной
// длительности игры - знаменатель occupancy rate считается всегда одинаково.
const StatsSlotMinutes = 30

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
