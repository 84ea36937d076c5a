package domain

import (
	"strings"

	"github.com/google/uuid"
)

// bookingCodePrefix префикс кода бронирования, показываемого пользователю
const bookingCodePrefix = "PB-"

// NewBookingCode генерирует короткий код бронирования вида "PB-1A2B3C4D"
// Код не является секретом - используется для поиска и в экспорте
func NewBookingCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return bookingCodePrefix + strings.ToUpper(raw[:8])
}
