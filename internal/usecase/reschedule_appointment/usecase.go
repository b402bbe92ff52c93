package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/ledger"
)

// UseCase use case переноса записи.
// Перенос - это проверка нового окна плюс обновление существующей записи:
// при любом отказе исходная запись остается нетронутой
type UseCase struct {
	bookingLedger BookingLedger
	hours         domain.BusinessHours
	location      *time.Location
	horizonDays   int
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingLedger BookingLedger,
	hours domain.BusinessHours,
	location *time.Location,
	horizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingLedger: bookingLedger,
		hours:         hours,
		location:      location,
		horizonDays:   horizonDays,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет перенос записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: customer=%s, current=%s, new=%s",
		req.CustomerPhone, req.CurrentStart.Format(time.RFC3339), req.NewStart.Format(time.RFC3339))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Поиск записи по телефону и точному текущему времени
	appointments, err := uc.bookingLedger.FindBookingsByPhone(ctx, req.CustomerPhone, uc.horizonDays)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			uc.logger.Error("RescheduleAppointment: ledger unavailable on lookup: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		}
		uc.logger.Error("RescheduleAppointment: failed to find bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to find bookings: %v", ErrInternal, err)
	}

	var target *domain.Appointment
	for _, appt := range appointments {
		if appt.MatchesStart(req.CurrentStart) {
			target = appt
			break
		}
	}
	if target == nil {
		uc.logger.Warn("RescheduleAppointment: no appointment at %s for %s",
			req.CurrentStart.Format(time.RFC3339), req.CustomerPhone)
		return nil, ErrAppointmentNotFound
	}

	duration := target.DurationMinutes

	// 3. Новое окно должно попадать в рабочие часы
	if err := validateBusinessHours(req.NewStart, duration, uc.hours, uc.location); err != nil {
		uc.logger.Warn("RescheduleAppointment: business hours check failed: %v", err)
		return nil, err
	}

	newStart := req.NewStart.In(uc.location)
	newEnd := newStart.Add(time.Duration(duration) * time.Minute)

	// 4. Проверка конфликтов по новому окну; сама переносимая запись исключается,
	// чтобы сдвиг внутри собственного окна не считался конфликтом
	booked, err := uc.bookingLedger.ListBookings(ctx, newStart, newEnd)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			uc.logger.Error("RescheduleAppointment: ledger unavailable on conflict check: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		}
		uc.logger.Error("RescheduleAppointment: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	if domain.HasConflict(newStart, duration, booked, target.EventID) {
		uc.logger.Warn("RescheduleAppointment: window %s-%s already taken",
			newStart.Format(time.RFC3339), newEnd.Format(time.RFC3339))
		return nil, ErrSlotNotAvailable
	}

	// 5. Обновление записи; отказ ledger'а при гонке - финальный арбитраж,
	// исходная запись при этом остается без изменений
	if err := uc.bookingLedger.UpdateBooking(ctx, target.EventID, newStart, duration); err != nil {
		switch {
		case errors.Is(err, ledger.ErrEventConflict):
			uc.logger.Warn("RescheduleAppointment: ledger rejected conflicting move to %s", newStart.Format(time.RFC3339))
			return nil, ErrSlotNotAvailable
		case errors.Is(err, ledger.ErrEventNotFound):
			uc.logger.Warn("RescheduleAppointment: event %s gone before update", target.EventID)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ledger.ErrUnavailable):
			// Запись вслепую не повторяется: без перепроверки конфликтов
			// повтор может привести к двойному бронированию
			uc.logger.Error("RescheduleAppointment: ledger unavailable on update: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		default:
			uc.logger.Error("RescheduleAppointment: failed to update booking: %v", err)
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("RescheduleAppointment: moved event_id=%s from %s to %s",
		target.EventID, target.Start.Format(time.RFC3339), newStart.Format(time.RFC3339))

	return &Response{
		EventID:         target.EventID,
		ServiceName:     target.ServiceName,
		OldStart:        target.Start,
		NewStart:        newStart,
		DurationMinutes: duration,
	}, nil
}
