package domain

import "time"

// EmailEvent тип события, порождающего транзакционное письмо
// Сопоставление события с ID шаблона у провайдера - конфигурация, не код
type EmailEvent string

const (
	EventBookingCreated      EmailEvent = "booking_created"
	EventBookingCancelled    EmailEvent = "booking_cancelled"
	EventParticipantAdded    EmailEvent = "participant_added"
	EventParticipantAccepted EmailEvent = "participant_accepted"
	EventParticipantDeclined EmailEvent = "participant_declined"
)

// EmailLogStatus результат попытки отправки письма
type EmailLogStatus string

const (
	EmailLogSent   EmailLogStatus = "sent"
	EmailLogFailed EmailLogStatus = "failed"
)

// EmailLog запись аудита отправки письма
// Каждая попытка отправки (успешная или нет) фиксируется отдельной строкой
type EmailLog struct {
	ID             int64
	RecipientEmail string
	EventType      EmailEvent
	TemplateID     int64
	BookingID      *int64
	Status         EmailLogStatus
	Error          *string
	CreatedAt      time.Time
}
