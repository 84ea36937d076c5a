package get_available_slots

import "errors"

var (
	// ErrCourtNotFound возвращается, когда запрошенный корт не найден или неактивен
	ErrCourtNotFound = errors.New("court not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
