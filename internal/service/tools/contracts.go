package tools

import (
	"context"

	"github.com/m04kA/SMC-VoiceScheduler/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-VoiceScheduler/internal/usecase/cancel_appointment"
	"github.com/m04kA/SMC-VoiceScheduler/internal/usecase/find_available_slots"
	"github.com/m04kA/SMC-VoiceScheduler/internal/usecase/reschedule_appointment"
)

// SlotFinder интерфейс use case поиска доступных слотов
type SlotFinder interface {
	Execute(ctx context.Context, req *find_available_slots.Request) (*find_available_slots.Response, error)
}

// AppointmentBooker интерфейс use case создания записи
type AppointmentBooker interface {
	Execute(ctx context.Context, req *book_appointment.Request) (*book_appointment.Response, error)
}

// AppointmentCanceller интерфейс use case отмены записи
type AppointmentCanceller interface {
	Execute(ctx context.Context, req *cancel_appointment.Request) (*cancel_appointment.Response, error)
}

// AppointmentRescheduler интерфейс use case переноса записи
type AppointmentRescheduler interface {
	Execute(ctx context.Context, req *reschedule_appointment.Request) (*reschedule_appointment.Response, error)
}

// MetricsCollector интерфейс для метрик выполнения инструментов
type MetricsCollector interface {
	ObserveToolExecution(tool, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
