package domain

import "time"

// ClubSettings глобальные настройки клуба (единственная строка в club_settings)
// Передаются явно в компоненты, которым нужны - не глобальное состояние
type ClubSettings struct {
	ID                      int64
	GameDurationMinutes     int
	PaymentTimeoutHours     int
	CancellationNoticeHours int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultClubSettings возвращает настройки по умолчанию
// Используются, когда строка настроек еще не создана администратором
func DefaultClubSettings() *ClubSettings {
	return &ClubSettings{
		GameDurationMinutes:     DefaultGameDurationMinutes,
		PaymentTimeoutHours:     DefaultPaymentTimeoutHours,
		CancellationNoticeHours: DefaultCancellationNoticeHours,
	}
}
