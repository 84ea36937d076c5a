package paymentservice

import "errors"

var (
	// ErrIntentNotFound возвращается, когда платежный интент не найден у провайдера
	ErrIntentNotFound = errors.New("paymentservice client: intent not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платежного провайдера
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")

	// ErrRejected возвращается, когда провайдер отклонил запрос
	ErrRejected = errors.New("paymentservice client: request rejected")
)
