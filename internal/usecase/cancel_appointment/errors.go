package cancel_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда подходящая запись не найдена
	ErrAppointmentNotFound = errors.New("cancel_appointment: no matching appointment")

	// ErrAmbiguousAppointment возвращается, когда у клиента несколько будущих
	// записей и время не указано. Какую отменить - никогда не угадывается
	ErrAmbiguousAppointment = errors.New("cancel_appointment: multiple appointments, start time required")

	// ErrLedgerUnavailable возвращается, когда ledger недоступен
	ErrLedgerUnavailable = errors.New("cancel_appointment: booking ledger unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_appointment: internal error")
)
