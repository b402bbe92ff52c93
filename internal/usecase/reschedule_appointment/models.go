package reschedule_appointment

import "time"

// Request модель запроса на перенос записи
type Request struct {
	CustomerPhone string    // Телефон клиента для поиска записи
	CurrentStart  time.Time // Текущее время записи (точное совпадение)
	NewStart      time.Time // Новое время записи
}

// Response модель ответа о перенесенной записи
type Response struct {
	EventID         string    // Идентификатор перенесенной записи
	ServiceName     string    // Название услуги
	OldStart        time.Time // Прежнее время начала
	NewStart        time.Time // Новое время начала
	DurationMinutes int       // Продолжительность записи в минутах
}
