package book_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	CustomerName    string    // Полное имя клиента
	CustomerPhone   string    // Телефон клиента (ключ для последующего поиска)
	ServiceName     string    // Название услуги
	Start           time.Time // Момент начала записи
	DurationMinutes int       // Длительность в минутах (0 - взять из конфигурации)
	StaffName       *string   // Предпочтительный сотрудник (опционально)
	Notes           *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	EventID         string    // Идентификатор, присвоенный ledger'ом
	CustomerName    string    // Имя клиента
	CustomerPhone   string    // Телефон клиента
	ServiceName     string    // Название услуги
	Start           time.Time // Момент начала
	DurationMinutes int       // Длительность в минутах
	StaffName       *string   // Сотрудник
	Notes           *string   // Заметки
	CreatedAt       time.Time // Время создания записи в ledger
}
