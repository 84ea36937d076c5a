package mailservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе почтового провайдера
	ErrInvalidResponse = errors.New("mailservice client: invalid response")

	// ErrRejected возвращается, когда провайдер отклонил письмо
	ErrRejected = errors.New("mailservice client: message rejected")
)
