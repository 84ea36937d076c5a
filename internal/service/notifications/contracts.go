package notifications

import (
	"context"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/internal/integrations/mailservice"
)

// MailClient интерфейс клиента почтового провайдера
type MailClient interface {
	SendTemplated(ctx context.Context, to mailservice.Recipient, templateID int64, params map[string]interface{}) (string, error)
}

// EmailLogRepository интерфейс репозитория журнала писем
type EmailLogRepository interface {
	Create(ctx context.Context, log *domain.EmailLog) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
