package expire_unpaid_bookings

import "errors"

var (
	// ErrAccessDenied возвращается, когда вызывающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrNotConfigured возвращается, когда настройки клуба не созданы.
	// Без явного payment_timeout_hours очистка не выполняется -
	// молчаливый дефолт здесь мог бы массово отменить оплачиваемые бронирования.
	ErrNotConfigured = errors.New("club settings are not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
