package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись на указанное время не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: no matching appointment")

	// ErrSlotNotAvailable возвращается, когда новое время уже занято
	ErrSlotNotAvailable = errors.New("reschedule_appointment: new time slot is not available")

	// ErrStartInPast возвращается, когда новое время уже прошло
	ErrStartInPast = errors.New("reschedule_appointment: new start time is in the past")

	// ErrOutsideBusinessHours возвращается, когда новое окно выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("reschedule_appointment: new time is outside business hours")

	// ErrLedgerUnavailable возвращается, когда ledger недоступен
	ErrLedgerUnavailable = errors.New("reschedule_appointment: booking ledger unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
