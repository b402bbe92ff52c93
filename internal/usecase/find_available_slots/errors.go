package find_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустая услуга, startDate > endDate, недопустимое предпочтение времени)
	ErrInvalidInput = errors.New("find_available_slots: invalid input data")

	// ErrRangeTooLarge возвращается, когда диапазон поиска превышает допустимый
	ErrRangeTooLarge = errors.New("find_available_slots: date range is too large")

	// ErrLedgerUnavailable возвращается, когда ledger недоступен и повтор не помог
	ErrLedgerUnavailable = errors.New("find_available_slots: booking ledger unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_available_slots: internal error")
)
