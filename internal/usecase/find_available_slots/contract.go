package find_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// BookingLedger интерфейс booking ledger (источник истины о бронированиях)
type BookingLedger interface {
	// ListBookings возвращает бронирования, пересекающиеся с окном [timeMin, timeMax),
	// упорядоченные по времени начала
	ListBookings(ctx context.Context, timeMin, timeMax time.Time) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
