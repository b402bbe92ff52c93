package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/ledger"
)

// UseCase use case отмены записи
type UseCase struct {
	bookingLedger BookingLedger
	horizonDays   int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingLedger BookingLedger, horizonDays int, logger Logger) *UseCase {
	return &UseCase{
		bookingLedger: bookingLedger,
		horizonDays:   horizonDays,
		logger:        logger,
	}
}

// Execute выполняет отмену записи.
// Запись ищется по телефону клиента; при нескольких будущих записях
// требуется время начала - какую отменить, никогда не угадывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: customer=%s", req.CustomerPhone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Поиск будущих записей клиента
	appointments, err := uc.bookingLedger.FindBookingsByPhone(ctx, req.CustomerPhone, uc.horizonDays)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			uc.logger.Error("CancelAppointment: ledger unavailable on lookup: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		}
		uc.logger.Error("CancelAppointment: failed to find bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to find bookings: %v", ErrInternal, err)
	}

	// 3. Выбор записи для отмены
	target, err := uc.resolveTarget(appointments, req.Start)
	if err != nil {
		return nil, err
	}

	// 4. Удаление из ledger
	if err := uc.bookingLedger.DeleteBooking(ctx, target.EventID); err != nil {
		switch {
		case errors.Is(err, ledger.ErrEventNotFound):
			// Запись исчезла между поиском и удалением
			uc.logger.Warn("CancelAppointment: event %s already gone", target.EventID)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ledger.ErrUnavailable):
			uc.logger.Error("CancelAppointment: ledger unavailable on delete: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		default:
			uc.logger.Error("CancelAppointment: failed to delete booking: %v", err)
			return nil, fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}
	}

	reason := "not specified"
	if req.Reason != nil && *req.Reason != "" {
		reason = *req.Reason
	}
	uc.logger.Info("CancelAppointment: deleted event_id=%s (start=%s, reason=%s)",
		target.EventID, target.Start.Format(time.RFC3339), reason)

	return &Response{
		EventID:     target.EventID,
		ServiceName: target.ServiceName,
		Start:       target.Start,
	}, nil
}

// resolveTarget выбирает запись для отмены из найденных
func (uc *UseCase) resolveTarget(appointments []*domain.Appointment, start *time.Time) (*domain.Appointment, error) {
	if len(appointments) == 0 {
		uc.logger.Warn("CancelAppointment: no future appointments found")
		return nil, ErrAppointmentNotFound
	}

	if start != nil {
		for _, appt := range appointments {
			if appt.MatchesStart(*start) {
				return appt, nil
			}
		}
		uc.logger.Warn("CancelAppointment: no appointment at %s", start.Format(time.RFC3339))
		return nil, ErrAppointmentNotFound
	}

	if len(appointments) > 1 {
		uc.logger.Warn("CancelAppointment: %d future appointments, start time required", len(appointments))
		return nil, ErrAmbiguousAppointment
	}

	return appointments[0], nil
}
