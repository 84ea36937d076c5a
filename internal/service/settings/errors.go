package settings

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда закрытие клуба не найдено
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrPromotionNotFound возвращается, когда акция не найдена
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
