package book_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrSlotNotAvailable возвращается, когда окно занято на момент записи
	// Альтернативное время никогда не выбирается автоматически
	ErrSlotNotAvailable = errors.New("book_appointment: slot is no longer available")

	// ErrStartInPast возвращается при попытке записи на прошедшее время
	ErrStartInPast = errors.New("book_appointment: start time is in the past")

	// ErrOutsideBusinessHours возвращается, когда окно не попадает в рабочие часы
	ErrOutsideBusinessHours = errors.New("book_appointment: outside business hours")

	// ErrLedgerUnavailable возвращается, когда ledger недоступен
	ErrLedgerUnavailable = errors.New("book_appointment: booking ledger unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
