package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент почтового провайдера транзакционных писем
// Письма собираются на стороне провайдера по ID шаблона и параметрам
type Client struct {
	baseURL    string
	apiKey     string
	sender     Recipient
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, apiKey, senderEmail, senderName string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		sender: Recipient{
			Email: senderEmail,
			Name:  senderName,
		},
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendTemplated отправляет письмо по шаблону провайдера
// Возвращает ID сообщения у провайдера
func (c *Client) SendTemplated(ctx context.Context, to Recipient, templateID int64, params map[string]interface{}) (string, error) {
	url := fmt.Sprintf("%s/v3/smtp/email", c.baseURL)

	payload := sendTemplatedRequest{
		Sender:     c.sender,
		To:         []Recipient{to},
		TemplateID: templateID,
		Params:     params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return "", fmt.Errorf("%w: %s", ErrRejected, errResp.Message)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result sendTemplatedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Sent templated email template_id=%d to=%s message_id=%s", templateID, to.Email, result.MessageID)

	return result.MessageID, nil
}
