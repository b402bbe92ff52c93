package find_available_slots

import (
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// Request модель запроса на поиск доступных слотов
type Request struct {
	ServiceName    string                // Название услуги
	StartDate      time.Time             // Начало диапазона поиска (дата без времени)
	EndDate        time.Time             // Конец диапазона поиска (включительно)
	StaffName      *string               // Предпочтительный сотрудник (опционально)
	TimePreference domain.TimePreference // Предпочтительное время суток (опционально)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ServiceName string // Название услуги из запроса
	Slots       []Slot // Свободные слоты в хронологическом порядке
}

// Slot модель свободного временного слота
type Slot struct {
	Start           time.Time // Момент начала (с таймзоной бизнеса)
	DurationMinutes int       // Длительность в минутах
}
