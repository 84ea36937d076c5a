package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/internal/integrations/mailservice"
)

// --- Фейки зависимостей ---

type sentMail struct {
	to         mailservice.Recipient
	templateID int64
	params     map[string]interface{}
}

type fakeMailClient struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailClient) SendTemplated(_ context.Context, to mailservice.Recipient, templateID int64, params map[string]interface{}) (string, error) {
	f.sent = append(f.sent, sentMail{to: to, templateID: templateID, params: params})
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return "msg-1", nil
}

type fakeLogRepo struct {
	records []*domain.EmailLog
}

func (f *fakeLogRepo) Create(_ context.Context, record *domain.EmailLog) error {
	f.records = append(f.records, record)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Фикстуры ---

var templates = map[string]int64{
	"booking_created":      101,
	"booking_cancelled":    102,
	"participant_added":    103,
	"participant_accepted": 104,
	"participant_declined": 105,
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          5,
		BookingCode: "PB-1A2B3C4D",
		BookingDate: time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:30",
		EndTime:     "12:00",
	}
}

func testCourt() *domain.Court {
	return &domain.Court{ID: 1, Name: "Terrain 1"}
}

func organizer() *domain.Profile {
	return &domain.Profile{ID: 10, FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com"}
}

// --- Тесты ---

func TestBookingCreated_NotifiesOrganizerAndParticipants(t *testing.T) {
	mail := &fakeMailClient{}
	logRepo := &fakeLogRepo{}
	d := NewDispatcher(mail, logRepo, templates, nopLogger{})

	participants := []*domain.Profile{
		{ID: 20, FirstName: "Marie", LastName: "Martin", Email: "marie@example.com"},
	}

	d.BookingCreated(context.Background(), testBooking(), testCourt(), organizer(), participants)

	require.Len(t, mail.sent, 2)

	assert.Equal(t, int64(101), mail.sent[0].templateID)
	assert.Equal(t, "jean@example.com", mail.sent[0].to.Email)
	assert.Equal(t, "PB-1A2B3C4D", mail.sent[0].params["booking_code"])
	assert.Equal(t, "Terrain 1", mail.sent[0].params["court_name"])

	assert.Equal(t, int64(103), mail.sent[1].templateID)
	assert.Equal(t, "marie@example.com", mail.sent[1].to.Email)
	assert.Equal(t, "Jean Dupont", mail.sent[1].params["organizer_name"])
	// Параметры организатора не затронуты параметрами приглашения
	assert.NotContains(t, mail.sent[0].params, "organizer_name")

	require.Len(t, logRepo.records, 2)
	assert.Equal(t, domain.EmailLogSent, logRepo.records[0].Status)
	assert.Equal(t, domain.EventBookingCreated, logRepo.records[0].EventType)
}

func TestSend_FailureRecordedNotPropagated(t *testing.T) {
	mail := &fakeMailClient{sendErr: errors.New("provider down")}
	logRepo := &fakeLogRepo{}
	d := NewDispatcher(mail, logRepo, templates, nopLogger{})

	d.BookingCancelled(context.Background(), testBooking(), testCourt(), organizer(), nil)

	require.Len(t, logRepo.records, 1)
	assert.Equal(t, domain.EmailLogFailed, logRepo.records[0].Status)
	require.NotNil(t, logRepo.records[0].Error)
	assert.Equal(t, "provider down", *logRepo.records[0].Error)
}

func TestSend_SkipsUnconfiguredTemplate(t *testing.T) {
	mail := &fakeMailClient{}
	logRepo := &fakeLogRepo{}
	d := NewDispatcher(mail, logRepo, map[string]int64{}, nopLogger{})

	d.BookingCreated(context.Background(), testBooking(), testCourt(), organizer(), nil)

	assert.Empty(t, mail.sent)
	assert.Empty(t, logRepo.records)
}

func TestSend_SkipsRecipientWithoutEmail(t *testing.T) {
	mail := &fakeMailClient{}
	logRepo := &fakeLogRepo{}
	d := NewDispatcher(mail, logRepo, templates, nopLogger{})

	noEmail := &domain.Profile{ID: 30, FirstName: "Luc"}
	d.BookingCreated(context.Background(), testBooking(), testCourt(), noEmail, nil)

	assert.Empty(t, mail.sent)
}

func TestParticipantResponded_PicksEventByAnswer(t *testing.T) {
	mail := &fakeMailClient{}
	logRepo := &fakeLogRepo{}
	d := NewDispatcher(mail, logRepo, templates, nopLogger{})

	participant := &domain.Profile{ID: 20, FirstName: "Marie", LastName: "Martin", Email: "marie@example.com"}

	d.ParticipantResponded(context.Background(), testBooking(), testCourt(), organizer(), participant, true)
	d.ParticipantResponded(context.Background(), testBooking(), testCourt(), organizer(), participant, false)

	require.Len(t, mail.sent, 2)
	assert.Equal(t, int64(104), mail.sent[0].templateID)
	assert.Equal(t, int64(105), mail.sent[1].templateID)
	assert.Equal(t, "Marie Martin", mail.sent[0].params["participant_name"])
}
