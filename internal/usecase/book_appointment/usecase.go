package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/ledger"
)

// UseCase use case создания записи
// Дисциплина конкурентности - оптимистичная: непосредственно перед записью
// бронирования перечитываются (сужение окна гонки), а отказ самого ledger'а
// при пересекающейся записи принимается как финальный арбитраж.
// Без атомарной проверки на стороне ledger'а между перечитыванием и записью
// остается остаточная гонка - это принятое ограничение
type UseCase struct {
	bookingLedger       BookingLedger
	hours               domain.BusinessHours
	location            *time.Location
	slotDurationMinutes int
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingLedger BookingLedger,
	hours domain.BusinessHours,
	location *time.Location,
	slotDurationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingLedger:       bookingLedger,
		hours:               hours,
		location:            location,
		slotDurationMinutes: slotDurationMinutes,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// Execute выполняет создание записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: customer=%s, service=%s, start=%s",
		req.CustomerPhone, req.ServiceName, req.Start.Format(time.RFC3339))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных (до обращений к ledger)
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.slotDurationMinutes
	}

	// 2. Окно должно попадать в рабочие часы
	if err := validateBusinessHours(req.Start, duration, uc.hours, uc.location); err != nil {
		uc.logger.Warn("BookAppointment: business hours check failed: %v", err)
		return nil, err
	}

	start := req.Start.In(uc.location)
	end := start.Add(time.Duration(duration) * time.Minute)

	// 3. Свежее перечитывание бронирований непосредственно перед записью
	booked, err := uc.bookingLedger.ListBookings(ctx, start, end)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			uc.logger.Error("BookAppointment: ledger unavailable on re-check: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		}
		uc.logger.Error("BookAppointment: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	if domain.HasConflict(start, duration, booked, "") {
		uc.logger.Warn("BookAppointment: window %s-%s already taken",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
		return nil, ErrSlotNotAvailable
	}

	// 4. Создаем запись; отказ ledger'а при гонке - финальный арбитраж
	appt := &domain.Appointment{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ServiceName:     req.ServiceName,
		StaffName:       req.StaffName,
		Start:           start,
		DurationMinutes: duration,
		Notes:           req.Notes,
	}

	eventID, err := uc.bookingLedger.CreateBooking(ctx, appt)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrEventConflict):
			uc.logger.Warn("BookAppointment: ledger rejected conflicting write for %s", start.Format(time.RFC3339))
			return nil, ErrSlotNotAvailable
		case errors.Is(err, ledger.ErrUnavailable):
			// Запись вслепую не повторяется: без перепроверки конфликтов
			// повтор может привести к двойному бронированию
			uc.logger.Error("BookAppointment: ledger unavailable on create: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		default:
			uc.logger.Error("BookAppointment: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("BookAppointment: created event_id=%s for %s at %s",
		eventID, req.CustomerPhone, start.Format(time.RFC3339))

	return &Response{
		EventID:         eventID,
		CustomerName:    appt.CustomerName,
		CustomerPhone:   appt.CustomerPhone,
		ServiceName:     appt.ServiceName,
		Start:           appt.Start,
		DurationMinutes: appt.DurationMinutes,
		StaffName:       appt.StaffName,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
	}, nil
}
