// Package memcalendar реализует booking ledger в памяти процесса.
// Используется как бэкенд для локальной разработки (ledger.backend = "memory")
// и как подменная реализация ledger в тестах use case'ов.
// Проверка конфликтов атомарна под мьютексом, поэтому семантика
// "не более одной записи на окно" сохраняется и при конкурентных вызовах.
package memcalendar

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/ledger"
)

// Ledger потокобезопасный in-memory booking ledger
type Ledger struct {
	mu     sync.Mutex
	events map[string]*domain.Appointment
	now    func() time.Time
}

// New создает пустой in-memory ledger
func New() *Ledger {
	return &Ledger{
		events: make(map[string]*domain.Appointment),
		now:    time.Now,
	}
}

// NewWithNow создает ledger с фиксированным источником времени (для тестов)
func NewWithNow(now func() time.Time) *Ledger {
	l := New()
	l.now = now
	return l
}

// ListBookings возвращает бронирования, пересекающиеся с окном [timeMin, timeMax),
// упорядоченные по времени начала
func (l *Ledger) ListBookings(_ context.Context, timeMin, timeMax time.Time) ([]*domain.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range l.events {
		if appt.OverlapsWindow(timeMin, timeMax) {
			result = append(result, copyAppointment(appt))
		}
	}

	sortByStart(result)
	return result, nil
}

// CreateBooking создает бронирование, если окно свободно
// Проверка и вставка атомарны - это "ledger-side final arbitration"
func (l *Ledger) CreateBooking(_ context.Context, appt *domain.Appointment) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.events {
		if existing.OverlapsWindow(appt.Start, appt.End()) {
			return "", ledger.ErrEventConflict
		}
	}

	eventID := uuid.NewString()
	stored := copyAppointment(appt)
	stored.EventID = eventID
	stored.CreatedAt = l.now()
	l.events[eventID] = stored

	appt.EventID = eventID
	appt.CreatedAt = stored.CreatedAt
	return eventID, nil
}

// FindBookingsByPhone возвращает будущие бронирования клиента по номеру телефона
// в пределах horizonDays дней, упорядоченные по времени начала
func (l *Ledger) FindBookingsByPhone(_ context.Context, phone string, horizonDays int) ([]*domain.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	horizon := now.AddDate(0, 0, horizonDays)

	result := make([]*domain.Appointment, 0)
	for _, appt := range l.events {
		if appt.CustomerPhone != phone {
			continue
		}
		if appt.Start.Before(now) || !appt.Start.Before(horizon) {
			continue
		}
		result = append(result, copyAppointment(appt))
	}

	sortByStart(result)
	return result, nil
}

// DeleteBooking удаляет бронирование по eventID
func (l *Ledger) DeleteBooking(_ context.Context, eventID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.events[eventID]; !ok {
		return ledger.ErrEventNotFound
	}

	delete(l.events, eventID)
	return nil
}

// UpdateBooking переносит бронирование на новое время, если целевое окно
// свободно (само переносимое бронирование из проверки исключается)
func (l *Ledger) UpdateBooking(_ context.Context, eventID string, newStart time.Time, newDurationMinutes int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	target, ok := l.events[eventID]
	if !ok {
		return ledger.ErrEventNotFound
	}

	newEnd := newStart.Add(time.Duration(newDurationMinutes) * time.Minute)
	for id, existing := range l.events {
		if id == eventID {
			continue
		}
		if existing.OverlapsWindow(newStart, newEnd) {
			return ledger.ErrEventConflict
		}
	}

	target.Start = newStart
	target.DurationMinutes = newDurationMinutes
	return nil
}

func copyAppointment(a *domain.Appointment) *domain.Appointment {
	cp := *a
	if a.StaffName != nil {
		staff := *a.StaffName
		cp.StaffName = &staff
	}
	if a.Notes != nil {
		notes := *a.Notes
		cp.Notes = &notes
	}
	return &cp
}

func sortByStart(appts []*domain.Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].Start.Before(appts[j].Start)
	})
}
