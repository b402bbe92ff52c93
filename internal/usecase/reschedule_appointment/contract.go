package reschedule_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// BookingLedger интерфейс booking ledger (источник истины о бронированиях)
type BookingLedger interface {
	// FindBookingsByPhone возвращает будущие бронирования клиента по телефону
	FindBookingsByPhone(ctx context.Context, phone string, horizonDays int) ([]*domain.Appointment, error)

	// ListBookings возвращает бронирования, пересекающиеся с окном [timeMin, timeMax)
	ListBookings(ctx context.Context, timeMin, timeMax time.Time) ([]*domain.Appointment, error)

	// UpdateBooking переносит бронирование на новое время
	UpdateBooking(ctx context.Context, eventID string, newStart time.Time, newDurationMinutes int) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальная реализация провайдера времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
