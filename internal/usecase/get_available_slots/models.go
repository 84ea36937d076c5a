package get_available_slots

import (
	"time"

	"github.com/padelio/PDL-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	UserID  int64      // ID пользователя (для логирования, не влияет на результат)
	Date    time.Time  // Дата, на которую запрашиваются слоты
	CourtID *int64     // Фильтр по корту (опционально)
}

// Response модель ответа со слотами по кортам
type Response struct {
	Date            time.Time    // Дата, на которую запрашивались слоты
	Closed          bool         // Клуб закрыт в эту дату
	DurationMinutes int          // Длительность игрового слота
	Courts          []CourtSlots // Сетка слотов по кортам
}

// CourtSlots сетка слотов одного корта
type CourtSlots struct {
	CourtID       int64
	CourtName     string
	BasePrice     int64   // базовая цена слота в центах
	Price         int64   // цена с учетом акции в центах
	PromotionName *string // название примененной акции
	Slots         []Slot
}

// Slot один игровой слот
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	BookingID *int64 // ID занимающего бронирования (для администраторов)
}
