package find_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/ledger"
)

// UseCase use case поиска доступных слотов
// Каждый вызов перечитывает актуальные бронирования из ledger:
// сервис не хранит собственного состояния календаря
type UseCase struct {
	bookingLedger       BookingLedger
	hours               domain.BusinessHours
	location            *time.Location
	slotDurationMinutes int
	bufferMinutes       int
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingLedger BookingLedger,
	hours domain.BusinessHours,
	location *time.Location,
	slotDurationMinutes int,
	bufferMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingLedger:       bookingLedger,
		hours:               hours,
		location:            location,
		slotDurationMinutes: slotDurationMinutes,
		bufferMinutes:       bufferMinutes,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// Execute выполняет поиск свободных слотов
// Пустой результат - не ошибка: ничего подходящего просто не нашлось
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableSlots: service=%s, range=%s..%s, preference=%s",
		req.ServiceName, req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat), req.TimePreference)

	// 1. Валидация входных данных (до обращений к ledger)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Окно запроса к ledger: с начала startDate до конца endDate
	timeMin := time.Date(req.StartDate.Year(), req.StartDate.Month(), req.StartDate.Day(), 0, 0, 0, 0, uc.location)
	timeMax := time.Date(req.EndDate.Year(), req.EndDate.Month(), req.EndDate.Day(), 0, 0, 0, 0, uc.location).AddDate(0, 0, 1)

	// 3. Читаем актуальные бронирования (чтение безопасно повторить один раз)
	booked, err := uc.listBookingsWithRetry(ctx, timeMin, timeMax)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			uc.logger.Error("FindAvailableSlots: ledger unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		}
		uc.logger.Error("FindAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Генерируем сетку кандидатов
	candidates, err := generateTimeGrid(
		req.StartDate, req.EndDate,
		uc.slotDurationMinutes, uc.bufferMinutes,
		uc.hours, uc.location, now,
	)
	if err != nil {
		uc.logger.Error("FindAvailableSlots: failed to generate time grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time grid: %v", ErrInternal, err)
	}

	// 5. Отбрасываем кандидатов, пересекающихся с бронированиями
	free := domain.FilterFreeSlots(candidates, booked)

	// 6. Фильтр по предпочтительному времени суток
	free = filterByPreference(free, req.TimePreference)

	uc.logger.Info("FindAvailableSlots: %d candidates, %d free after filtering (bookings=%d)",
		len(candidates), len(free), len(booked))

	slots := make([]Slot, len(free))
	for i, s := range free {
		slots[i] = Slot{
			Start:           s.Start,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &Response{
		ServiceName: req.ServiceName,
		Slots:       slots,
	}, nil
}

// listBookingsWithRetry читает бронирования с одним повтором при временной
// недоступности ledger. Больше одного повтора не делается
func (uc *UseCase) listBookingsWithRetry(ctx context.Context, timeMin, timeMax time.Time) ([]*domain.Appointment, error) {
	booked, err := uc.bookingLedger.ListBookings(ctx, timeMin, timeMax)
	if err != nil && errors.Is(err, ledger.ErrUnavailable) {
		uc.logger.Warn("FindAvailableSlots: ledger unavailable, retrying once: %v", err)
		booked, err = uc.bookingLedger.ListBookings(ctx, timeMin, timeMax)
	}
	return booked, err
}
