package create_booking

import "errors"

var (
	// ErrClubClosed возвращается, когда клуб закрыт в указанную дату
	ErrClubClosed = errors.New("club is closed on this date")

	// ErrCourtNotFound возвращается, когда корт не найден или неактивен
	ErrCourtNotFound = errors.New("court not found")

	// ErrOrganizerNotFound возвращается, когда профиль организатора не найден
	ErrOrganizerNotFound = errors.New("organizer profile not found")

	// ErrParticipantNotFound возвращается, когда приглашенный участник не найден
	ErrParticipantNotFound = errors.New("participant profile not found")

	// ErrCapacityExceeded возвращается, когда число игроков превышает вместимость корта
	ErrCapacityExceeded = errors.New("court capacity exceeded")

	// ErrSlotConflict возвращается, когда слот пересекается с существующим бронированием
	ErrSlotConflict = errors.New("slot conflicts with an existing booking")

	// ErrOutsideOpeningHours возвращается, когда игра не помещается в окно работы клуба
	ErrOutsideOpeningHours = errors.New("slot is outside opening hours")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
