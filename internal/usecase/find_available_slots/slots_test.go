package find_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/types"
)

func testHours(t *testing.T, open, close string) domain.BusinessHours {
	t.Helper()

	openTS, err := types.NewTimeStringFromString(open)
	require.NoError(t, err)
	closeTS, err := types.NewTimeStringFromString(close)
	require.NoError(t, err)

	weekdays := make(map[time.Weekday]bool)
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdays[d] = true
	}

	return domain.BusinessHours{
		OpenLocal:      openTS,
		CloseLocal:     closeTS,
		ActiveWeekdays: weekdays,
	}
}

func TestGenerateTimeGrid_SingleDay(t *testing.T) {
	loc := time.UTC
	hours := testHours(t, "09:00", "17:00")
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, loc)
	now := time.Date(2030, 6, 1, 0, 0, 0, 0, loc)

	slots, err := generateTimeGrid(day, day, 60, 15, hours, loc, now)
	require.NoError(t, err)

	// Шаг 75 минут от 09:00, пока слот помещается до 17:00
	expected := []string{"09:00", "10:15", "11:30", "12:45", "14:00", "15:15"}
	require.Len(t, slots, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, slots[i].Start.Format("15:04"), "slot %d", i)
		assert.Equal(t, 60, slots[i].DurationMinutes)
	}
}

func TestGenerateTimeGrid_ZeroBuffer(t *testing.T) {
	loc := time.UTC
	hours := testHours(t, "09:00", "12:00")
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, loc)
	now := time.Date(2030, 6, 1, 0, 0, 0, 0, loc)

	slots, err := generateTimeGrid(day, day, 60, 0, hours, loc, now)
	require.NoError(t, err)

	// Слоты встык: 09:00, 10:00, 11:00; слот 12:00 уже не помещается
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
	assert.Equal(t, "10:00", slots[1].Start.Format("15:04"))
	assert.Equal(t, "11:00", slots[2].Start.Format("15:04"))
}

func TestGenerateTimeGrid_SkipsPastSlots(t *testing.T) {
	loc := time.UTC
	hours := testHours(t, "09:00", "17:00")
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, loc)
	now := time.Date(2030, 6, 10, 11, 0, 0, 0, loc)

	slots, err := generateTimeGrid(day, day, 60, 15, hours, loc, now)
	require.NoError(t, err)

	// 09:00 и 10:15 в прошлом относительно now
	require.NotEmpty(t, slots)
	assert.Equal(t, "11:30", slots[0].Start.Format("15:04"))
	for _, slot := range slots {
		assert.False(t, slot.Start.Before(now))
	}
}

func TestGenerateTimeGrid_SkipsInactiveDays(t *testing.T) {
	loc := time.UTC
	openTS, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)
	closeTS, err := types.NewTimeStringFromString("17:00")
	require.NoError(t, err)

	// Работаем только по понедельникам
	hours := domain.BusinessHours{
		OpenLocal:      openTS,
		CloseLocal:     closeTS,
		ActiveWeekdays: map[time.Weekday]bool{time.Monday: true},
	}

	// 2030-06-10 - понедельник
	monday := time.Date(2030, 6, 10, 0, 0, 0, 0, loc)
	require.Equal(t, time.Monday, monday.Weekday())

	now := time.Date(2030, 6, 1, 0, 0, 0, 0, loc)
	slots, err := generateTimeGrid(monday, monday.AddDate(0, 0, 6), 60, 15, hours, loc, now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	for _, slot := range slots {
		assert.Equal(t, time.Monday, slot.Start.Weekday())
	}
}

func TestGenerateTimeGrid_DayShorterThanDuration(t *testing.T) {
	loc := time.UTC
	hours := testHours(t, "09:00", "09:30")
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, loc)
	now := time.Date(2030, 6, 1, 0, 0, 0, 0, loc)

	slots, err := generateTimeGrid(day, day, 60, 15, hours, loc, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFilterByPreference(t *testing.T) {
	loc := time.UTC
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, loc)

	slots := []domain.TimeSlot{
		{Start: day.Add(9 * time.Hour), DurationMinutes: 60},
		{Start: day.Add(11 * time.Hour), DurationMinutes: 60},
		{Start: day.Add(13 * time.Hour), DurationMinutes: 60},
		{Start: day.Add(17 * time.Hour), DurationMinutes: 60},
	}

	morning := filterByPreference(slots, domain.PreferenceMorning)
	require.Len(t, morning, 2)
	assert.Equal(t, 9, morning[0].Start.Hour())
	assert.Equal(t, 11, morning[1].Start.Hour())

	afternoon := filterByPreference(slots, domain.PreferenceAfternoon)
	require.Len(t, afternoon, 1)
	assert.Equal(t, 13, afternoon[0].Start.Hour())

	evening := filterByPreference(slots, domain.PreferenceEvening)
	require.Len(t, evening, 1)
	assert.Equal(t, 17, evening[0].Start.Hour())

	assert.Len(t, filterByPreference(slots, domain.PreferenceAny), 4)
	assert.Len(t, filterByPreference(slots, ""), 4)
}
