package memcalendar

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/ledger"
)

func testAppointment(phone string, start time.Time) *domain.Appointment {
	return &domain.Appointment{
		CustomerName:    "Alice Smith",
		CustomerPhone:   phone,
		ServiceName:     "haircut",
		Start:           start,
		DurationMinutes: 60,
	}
}

func TestCreateBooking_AssignsEventID(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewWithNow(func() time.Time { return now })

	appt := testAppointment("+15550001111", time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC))
	eventID, err := l.CreateBooking(context.Background(), appt)
	require.NoError(t, err)
	assert.NotEmpty(t, eventID)
	assert.Equal(t, eventID, appt.EventID)
	assert.True(t, appt.CreatedAt.Equal(now))
}

func TestCreateBooking_RejectsOverlap(t *testing.T) {
	l := New()
	start := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)

	_, err := l.CreateBooking(context.Background(), testAppointment("+15550001111", start))
	require.NoError(t, err)

	_, err = l.CreateBooking(context.Background(), testAppointment("+15550002222", start.Add(30*time.Minute)))
	assert.ErrorIs(t, err, ledger.ErrEventConflict)

	// Граничащее окно конфликтом не считается
	_, err = l.CreateBooking(context.Background(), testAppointment("+15550002222", start.Add(time.Hour)))
	assert.NoError(t, err)
}

func TestListBookings_WindowAndOrder(t *testing.T) {
	l := New()
	ctx := context.Background()
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := l.CreateBooking(ctx, testAppointment("+1", day.Add(14*time.Hour)))
	require.NoError(t, err)
	_, err = l.CreateBooking(ctx, testAppointment("+2", day.Add(9*time.Hour)))
	require.NoError(t, err)
	_, err = l.CreateBooking(ctx, testAppointment("+3", day.AddDate(0, 0, 2).Add(9*time.Hour)))
	require.NoError(t, err)

	got, err := l.ListBookings(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Start.Before(got[1].Start))
}

func TestFindBookingsByPhone_FutureWithinHorizon(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewWithNow(func() time.Time { return now })
	ctx := context.Background()

	// Прошедшая запись
	past := testAppointment("+15550001111", now.AddDate(0, 0, -40))
	_, err := l.CreateBooking(ctx, past)
	require.NoError(t, err)

	// Будущая в пределах горизонта
	_, err = l.CreateBooking(ctx, testAppointment("+15550001111", now.AddDate(0, 0, 5)))
	require.NoError(t, err)

	// Будущая за горизонтом
	_, err = l.CreateBooking(ctx, testAppointment("+15550001111", now.AddDate(0, 0, 60)))
	require.NoError(t, err)

	// Чужой номер
	_, err = l.CreateBooking(ctx, testAppointment("+15550009999", now.AddDate(0, 0, 6)))
	require.NoError(t, err)

	got, err := l.FindBookingsByPhone(ctx, "+15550001111", 30)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(now.AddDate(0, 0, 5)))
}

func TestDeleteBooking(t *testing.T) {
	l := New()
	ctx := context.Background()

	eventID, err := l.CreateBooking(ctx, testAppointment("+1", time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	require.NoError(t, l.DeleteBooking(ctx, eventID))
	assert.ErrorIs(t, l.DeleteBooking(ctx, eventID), ledger.ErrEventNotFound)
}

func TestUpdateBooking(t *testing.T) {
	l := New()
	ctx := context.Background()
	start := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)

	eventID, err := l.CreateBooking(ctx, testAppointment("+1", start))
	require.NoError(t, err)
	_, err = l.CreateBooking(ctx, testAppointment("+2", start.Add(2*time.Hour)))
	require.NoError(t, err)

	// Перенос в занятое окно отклоняется, запись не меняется
	err = l.UpdateBooking(ctx, eventID, start.Add(90*time.Minute), 60)
	assert.ErrorIs(t, err, ledger.ErrEventConflict)

	got, err := l.ListBookings(ctx, start, start.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(start))

	// Сдвиг внутри собственного окна разрешен
	require.NoError(t, l.UpdateBooking(ctx, eventID, start.Add(30*time.Minute), 60))

	err = l.UpdateBooking(ctx, "missing", start, 60)
	assert.ErrorIs(t, err, ledger.ErrEventNotFound)
}

func TestListBookings_ReturnsCopies(t *testing.T) {
	l := New()
	ctx := context.Background()
	start := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)

	_, err := l.CreateBooking(ctx, testAppointment("+1", start))
	require.NoError(t, err)

	got, err := l.ListBookings(ctx, start, start.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Мутация результата не влияет на состояние ledger
	got[0].CustomerName = "Mallory"

	again, err := l.ListBookings(ctx, start, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", again[0].CustomerName)
}

func TestCreateBooking_ConcurrentSameWindow(t *testing.T) {
	l := New()
	start := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.CreateBooking(context.Background(), testAppointment("+1", start))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ledger.ErrEventConflict)
		}
	}
	assert.Equal(t, 1, succeeded)
}
