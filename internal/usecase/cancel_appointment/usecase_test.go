package cancel_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/memcalendar"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

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

func TestExecute_CancelsSingleAppointment(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(func() time.Time { return now })
	uc := NewUseCase(lg, 30, nopLogger{})

	start := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)
	eventID := seedAppointment(t, lg, "+15550001111", start)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		Reason:        ptr.Ptr("schedule change"),
	})
	require.NoError(t, err)
	assert.Equal(t, eventID, resp.EventID)
	assert.True(t, resp.Start.Equal(start))

	remaining, err := lg.FindBookingsByPhone(context.Background(), "+15550001111", 30)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestExecute_AmbiguousWithoutStart(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(func() time.Time { return now })
	uc := NewUseCase(lg, 30, nopLogger{})

	seedAppointment(t, lg, "+15550001111", time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC))
	seedAppointment(t, lg, "+15550001111", time.Date(2030, 6, 12, 14, 0, 0, 0, time.UTC))

	// Две будущие записи и нет времени - никогда не угадываем, какую отменить
	_, err := uc.Execute(context.Background(), &Request{CustomerPhone: "+15550001111"})
	assert.ErrorIs(t, err, ErrAmbiguousAppointment)

	remaining, err := lg.FindBookingsByPhone(context.Background(), "+15550001111", 30)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestExecute_DisambiguatesByStart(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(func() time.Time { return now })
	uc := NewUseCase(lg, 30, nopLogger{})

	first := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)
	second := time.Date(2030, 6, 12, 14, 0, 0, 0, time.UTC)
	seedAppointment(t, lg, "+15550001111", first)
	secondID := seedAppointment(t, lg, "+15550001111", second)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		Start:         &second,
	})
	require.NoError(t, err)
	assert.Equal(t, secondID, resp.EventID)

	remaining, err := lg.FindBookingsByPhone(context.Background(), "+15550001111", 30)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.True(t, remaining[0].Start.Equal(first))
}

func TestExecute_NotFound(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(func() time.Time { return now })
	uc := NewUseCase(lg, 30, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CustomerPhone: "+15550009999"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// Время указано, но записи на него нет
	seedAppointment(t, lg, "+15550001111", time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC))
	wrong := time.Date(2030, 6, 11, 10, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), &Request{
		CustomerPhone: "+15550001111",
		Start:         &wrong,
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_RequiresPhone(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	lg := memcalendar.NewWithNow(func() time.Time { return now })
	uc := NewUseCase(lg, 30, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CustomerPhone: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
