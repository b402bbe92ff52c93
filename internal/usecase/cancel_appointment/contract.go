package cancel_appointment

import (
	"context"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// BookingLedger интерфейс booking ledger (источник истины о бронированиях)
type BookingLedger interface {
	// FindBookingsByPhone возвращает будущие бронирования клиента по телефону
	FindBookingsByPhone(ctx context.Context, phone string, horizonDays int) ([]*domain.Appointment, error)

	// DeleteBooking удаляет бронирование по eventID
	// Возвращает ledger.ErrEventNotFound, если запись уже отсутствует
	DeleteBooking(ctx context.Context, eventID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
