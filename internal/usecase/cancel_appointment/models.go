package cancel_appointment

import "time"

// Request модель запроса на отмену записи
type Request struct {
	CustomerPhone string     // Телефон клиента для поиска записи
	Start         *time.Time // Время записи для разрешения неоднозначности (опционально)
	Reason        *string    // Причина отмены (опционально, только для лога)
}

// Response модель ответа об отмененной записи
type Response struct {
	EventID     string    // Идентификатор удаленной записи
	ServiceName string    // Название услуги
	Start       time.Time // Время начала отмененной записи
}
