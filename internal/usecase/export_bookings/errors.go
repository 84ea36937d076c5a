package export_bookings

import "errors"

var (
	// ErrAccessDenied возвращается, когда вызывающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPeriod возвращается при некорректном периоде экспорта
	ErrInvalidPeriod = errors.New("invalid export period")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
