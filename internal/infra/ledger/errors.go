// Package ledger определяет общие sentinel ошибки для всех реализаций
// booking ledger (PostgreSQL, внешний календарный сервис, in-memory).
// Use case'ы проверяют эти ошибки через errors.Is, не завися от конкретной
// реализации хранилища.
package ledger

import "errors"

var (
	// ErrEventNotFound возвращается, когда запись с указанным eventID отсутствует
	ErrEventNotFound = errors.New("ledger: event not found")

	// ErrEventConflict возвращается, когда хранилище обнаружило пересекающуюся
	// запись при создании или изменении (финальный арбитраж ledger'а)
	ErrEventConflict = errors.New("ledger: event conflicts with existing booking")

	// ErrUnavailable возвращается при таймауте или сетевой недоступности ledger'а
	// Отличается от конфликта: "нет ответа" не означает "нет пересечений"
	ErrUnavailable = errors.New("ledger: temporarily unavailable")

	// ErrInternal возвращается при прочих внутренних ошибках реализации
	ErrInternal = errors.New("ledger: internal error")
)
