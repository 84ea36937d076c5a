package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrParticipantNotFound возвращается, когда участник не найден в бронировании
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается при попытке отменить уже отмененное бронирование
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCancellationTooLate возвращается при отмене позже допустимого срока
	ErrCancellationTooLate = errors.New("cancellation notice period has passed")

	// ErrBookingNotActive возвращается при ответе на приглашение в отмененном бронировании
	ErrBookingNotActive = errors.New("booking is not active")

	// ErrAlreadyResponded возвращается при повторном ответе на приглашение
	ErrAlreadyResponded = errors.New("participation already responded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
