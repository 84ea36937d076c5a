package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrParticipantNotFound возвращается, когда участник не найден
	ErrParticipantNotFound = errors.New("booking.repository: participant not found")

	// ErrSlotConflict возвращается при нарушении эксклюзивности слота
	// (exclusion constraint на пересечение интервалов корта и даты)
	ErrSlotConflict = errors.New("booking.repository: overlapping booking exists")

	// ErrDuplicateParticipant возвращается при повторном добавлении участника
	ErrDuplicateParticipant = errors.New("booking.repository: participant already added")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
