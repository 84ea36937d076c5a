package get_stats

import "errors"

var (
	// ErrAccessDenied возвращается, когда вызывающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPeriod возвращается при некорректном периоде статистики
	ErrInvalidPeriod = errors.New("invalid stats period")

	// ErrInvalidGroupBy возвращается при недопустимом значении groupBy
	ErrInvalidGroupBy = errors.New("groupBy must be day, week, month or year")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
