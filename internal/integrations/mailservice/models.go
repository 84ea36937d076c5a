package mailservice

// Recipient получатель письма
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// sendTemplatedRequest запрос на отправку письма по шаблону провайдера
type sendTemplatedRequest struct {
	Sender     Recipient              `json:"sender"`
	To         []Recipient            `json:"to"`
	TemplateID int64                  `json:"templateId"`
	Params     map[string]interface{} `json:"params,omitempty"`
}

// sendTemplatedResponse ответ провайдера на отправку письма
type sendTemplatedResponse struct {
	MessageID string `json:"messageId"`
}

// ErrorResponse модель ошибки почтового провайдера
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
