package domain

import "time"

// Appointment запись о бронировании в календаре (ledger)
// EventID присваивается ledger'ом при создании и является единственным
// идентификатором для изменения и удаления записи
type Appointment struct {
	EventID         string
	CustomerName    string
	CustomerPhone   string
	ServiceName     string
	StaffName       *string
	Start           time.Time
	DurationMinutes int
	Notes           *string
	CreatedAt       time.Time
}

// End возвращает момент окончания бронирования (полуоткрытый интервал [Start, End))
func (a *Appointment) End() time.Time {
	return a.Start.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// OverlapsWindow проверяет пересечение бронирования с окном [start, end)
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func (a *Appointment) OverlapsWindow(start, end time.Time) bool {
	return a.Start.Before(end) && start.Before(a.End())
}

// MatchesStart проверяет, что бронирование начинается ровно в указанный момент
func (a *Appointment) MatchesStart(start time.Time) bool {
	return a.Start.Equal(start)
}
