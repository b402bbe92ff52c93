package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/memcalendar"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func allWeekHours(t *testing.T) domain.BusinessHours {
	t.Helper()

	open, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)
	closeAt, err := types.NewTimeStringFromString("17:00")
	require.NoError(t, err)

	weekdays := make(map[time.Weekday]bool)
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdays[d] = true
	}

	return domain.BusinessHours{OpenLocal: open, CloseLocal: closeAt, ActiveWeekdays: weekdays}
}

func newTestUseCase(t *testing.T, lg BookingLedger, now time.Time) *UseCase {
	t.Helper()

	uc := NewUseCase(lg, allWeekHours(t), time.UTC, 30, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func seedAppointment(t *testing.T, lg *memcalendar.Ledger, phone string, start time.Time) string {
	t.Helper()

	eventID, err := lg.CreateBooking(context.Background(), &domain.Appointment{
		CustomerName:    "Alice Smith",
		CustomerPhone:   phone,
		ServiceName:     "haircut",
		Start:           start,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	return eventID
}

func TestExecute_MovesAppointment(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(fixedTime{t: now}.Now)
	uc := newTestUseCase(t, lg, now)

	oldStart := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)
	newStart := time.Date(2030, 6, 12, 14, 0, 0, 0, time.UTC)
	eventID := seedAppointment(t, lg, "+15550001111", oldStart)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		CurrentStart:  oldStart,
		NewStart:      newStart,
	})
	require.NoError(t, err)
	assert.Equal(t, eventID, resp.EventID)
	assert.True(t, resp.OldStart.Equal(oldStart))
	assert.True(t, resp.NewStart.Equal(newStart))
	// Длительность сохраняется
	assert.Equal(t, 60, resp.DurationMinutes)

	moved, err := lg.FindBookingsByPhone(context.Background(), "+15550001111", 30)
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.True(t, moved[0].Start.Equal(newStart))
}

func TestExecute_ConflictLeavesOriginalUnchanged(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(fixedTime{t: now}.Now)
	uc := newTestUseCase(t, lg, now)

	oldStart := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)
	taken := time.Date(2030, 6, 12, 14, 0, 0, 0, time.UTC)
	seedAppointment(t, lg, "+15550001111", oldStart)
	seedAppointment(t, lg, "+15550002222", taken)

	// Целевое окно пересекается с чужой записью
	_, err := uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		CurrentStart:  oldStart,
		NewStart:      taken.Add(-30 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Исходная запись не тронута
	original, err := lg.FindBookingsByPhone(context.Background(), "+15550001111", 30)
	require.NoError(t, err)
	require.Len(t, original, 1)
	assert.True(t, original[0].Start.Equal(oldStart))
}

func TestExecute_MoveWithinOwnWindow(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(fixedTime{t: now}.Now)
	uc := newTestUseCase(t, lg, now)

	oldStart := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)
	seedAppointment(t, lg, "+15550001111", oldStart)

	// Сдвиг на 30 минут пересекается только с самой переносимой записью
	resp, err := uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		CurrentStart:  oldStart,
		NewStart:      oldStart.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	assert.True(t, resp.NewStart.Equal(oldStart.Add(30*time.Minute)))
}

func TestExecute_NotFoundOnWrongStart(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(fixedTime{t: now}.Now)
	uc := newTestUseCase(t, lg, now)

	seedAppointment(t, lg, "+15550001111", time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		CurrentStart:  time.Date(2030, 6, 10, 11, 0, 0, 0, time.UTC),
		NewStart:      time.Date(2030, 6, 12, 14, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(fixedTime{t: now}.Now)
	uc := newTestUseCase(t, lg, now)

	oldStart := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)
	seedAppointment(t, lg, "+15550001111", oldStart)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		CurrentStart:  oldStart,
		NewStart:      now.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrStartInPast)

	// 20:00 за пределами рабочих часов
	_, err = uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		CurrentStart:  oldStart,
		NewStart:      time.Date(2030, 6, 12, 20, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}
