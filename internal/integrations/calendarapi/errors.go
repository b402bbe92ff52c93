package calendarapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе календарного сервиса
	ErrInvalidResponse = errors.New("calendarapi client: invalid response")
)
