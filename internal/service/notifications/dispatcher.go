package notifications

import (
	"context"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/internal/integrations/mailservice"
	"github.com/padelio/PDL-BookingService/pkg/ptr"
)

// Dispatcher отправляет транзакционные письма после фиксации бизнес-операций.
// Все отправки best-effort: ошибка письма логируется и фиксируется в email_log,
// но никогда не влияет на результат операции, породившей уведомление.
type Dispatcher struct {
	mailClient MailClient
	logRepo    EmailLogRepository
	templates  map[string]int64
	logger     Logger
}

// NewDispatcher создает новый диспетчер уведомлений
// templates - соответствие события ID шаблона у провайдера (из конфига)
func NewDispatcher(mailClient MailClient, logRepo EmailLogRepository, templates map[string]int64, logger Logger) *Dispatcher {
	return &Dispatcher{
		mailClient: mailClient,
		logRepo:    logRepo,
		templates:  templates,
		logger:     logger,
	}
}

// BookingCreated уведомляет организатора и приглашенных участников о новом бронировании
func (d *Dispatcher) BookingCreated(ctx context.Context, booking *domain.Booking, court *domain.Court, organizer *domain.Profile, participants []*domain.Profile) {
	params := d.bookingParams(booking, court)

	d.send(ctx, domain.EventBookingCreated, organizer, &booking.ID, params)

	for _, participant := range participants {
		invited := copyParams(params)
		invited["organizer_name"] = organizer.FullName()
		d.send(ctx, domain.EventParticipantAdded, participant, &booking.ID, invited)
	}
}

// BookingCancelled уведомляет организатора и участников об отмене бронирования
func (d *Dispatcher) BookingCancelled(ctx context.Context, booking *domain.Booking, court *domain.Court, organizer *domain.Profile, participants []*domain.Profile) {
	params := d.bookingParams(booking, court)

	d.send(ctx, domain.EventBookingCancelled, organizer, &booking.ID, params)

	for _, participant := range participants {
		d.send(ctx, domain.EventBookingCancelled, participant, &booking.ID, copyParams(params))
	}
}

// ParticipantResponded уведомляет организатора об ответе участника на приглашение
func (d *Dispatcher) ParticipantResponded(ctx context.Context, booking *domain.Booking, court *domain.Court, organizer *domain.Profile, participant *domain.Profile, accepted bool) {
	event := domain.EventParticipantDeclined
	if accepted {
		event = domain.EventParticipantAccepted
	}

	params := d.bookingParams(booking, court)
	params["participant_name"] = participant.FullName()

	d.send(ctx, event, organizer, &booking.ID, params)
}

// send отправляет одно письмо и фиксирует попытку в журнале
func (d *Dispatcher) send(ctx context.Context, event domain.EmailEvent, recipient *domain.Profile, bookingID *int64, params map[string]interface{}) {
	if recipient == nil || recipient.Email == "" {
		d.logger.Warn("Notifications: no email for event=%s, skipping", event)
		return
	}

	templateID, ok := d.templates[string(event)]
	if !ok {
		d.logger.Warn("Notifications: no template configured for event=%s, skipping", event)
		return
	}

	to := mailservice.Recipient{
		Email: recipient.Email,
		Name:  recipient.FullName(),
	}

	record := &domain.EmailLog{
		RecipientEmail: recipient.Email,
		EventType:      event,
		TemplateID:     templateID,
		BookingID:      bookingID,
		Status:         domain.EmailLogSent,
	}

	if _, err := d.mailClient.SendTemplated(ctx, to, templateID, params); err != nil {
		d.logger.Error("Notifications: failed to send event=%s to=%s: %v", event, recipient.Email, err)
		record.Status = domain.EmailLogFailed
		record.Error = ptr.Ptr(err.Error())
	}

	if err := d.logRepo.Create(ctx, record); err != nil {
		d.logger.Error("Notifications: failed to write email log for event=%s to=%s: %v", event, recipient.Email, err)
	}
}

func (d *Dispatcher) bookingParams(booking *domain.Booking, court *domain.Court) map[string]interface{} {
	params := map[string]interface{}{
		"booking_code": booking.BookingCode,
		"booking_date": booking.BookingDate.Format(domain.DateFormat),
		"start_time":   booking.StartTime.String(),
		"end_time":     booking.EndTime.String(),
	}
	if court != nil {
		params["court_name"] = court.Name
	}
	return params
}

func copyParams(params map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(params))
	for k, v := range params {
		result[k] = v
	}
	return result
}
