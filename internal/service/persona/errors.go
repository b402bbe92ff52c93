package persona

import "errors"

var (
	// ErrPersonaNotFound возвращается, когда не найден ни запрошенный
	// persona-файл, ни default
	ErrPersonaNotFound = errors.New("persona: persona file not found")
)
