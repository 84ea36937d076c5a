package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Client клиент платежного провайдера
// Работает с intent-ориентированным API: создание интента резервирует платеж,
// подтверждение происходит на стороне фронтенда через client_secret
type Client struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр платежного клиента
func NewClient(baseURL, apiKey, currency string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		currency: currency,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateIntent создает платежный интент на сумму бронирования
func (c *Client) CreateIntent(ctx context.Context, bookingID int64, amountCents int64) (*Intent, error) {
	url := fmt.Sprintf("%s/v1/payment_intents", c.baseURL)

	payload := createIntentRequest{
		AmountCents: amountCents,
		Currency:    c.currency,
		Metadata: map[string]string{
			"booking_id": strconv.FormatInt(bookingID, 10),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("%w: %s", ErrRejected, errResp.Message)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Created payment intent %s for booking_id=%d amount=%d", intent.ID, bookingID, amountCents)

	return &intent, nil
}

// CancelIntent отменяет платежный интент
// Вызывается при отмене неоплаченного бронирования
func (c *Client) CancelIntent(ctx context.Context, intentID string) error {
	url := fmt.Sprintf("%s/v1/payment_intents/%s/cancel", c.baseURL, intentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrIntentNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}
