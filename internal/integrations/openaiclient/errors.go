package openaiclient

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("openai client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе API
	ErrInvalidResponse = errors.New("openai client: invalid response")

	// ErrAPIStatus возвращается, когда API вернул неуспешный статус-код
	ErrAPIStatus = errors.New("openai client: api error")

	// ErrTimeout возвращается при таймауте запроса к API
	ErrTimeout = errors.New("openai client: request timed out")
)
