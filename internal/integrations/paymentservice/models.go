package paymentservice

// Intent платежный интент, созданный у провайдера
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	AmountCents  int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// createIntentRequest запрос на создание платежного интента
type createIntentRequest struct {
	AmountCents int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// ErrorResponse модель ошибки платежного провайдера
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
