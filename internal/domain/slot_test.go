package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot_Overlaps(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	appt := &Appointment{
		EventID:         "evt-1",
		Start:           day.Add(10 * time.Hour),
		DurationMinutes: 60,
	}

	cases := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"полное совпадение", day.Add(10 * time.Hour), true},
		{"частичное пересечение слева", day.Add(9*time.Hour + 30*time.Minute), true},
		{"частичное пересечение справа", day.Add(10*time.Hour + 30*time.Minute), true},
		{"конец слота равен началу бронирования", day.Add(9 * time.Hour), false},
		{"начало слота равно концу бронирования", day.Add(11 * time.Hour), false},
		{"без пересечения", day.Add(13 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot := TimeSlot{Start: tc.start, DurationMinutes: 60}
			assert.Equal(t, tc.want, slot.Overlaps(appt))
		})
	}
}

func TestFilterFreeSlots_PreservesOrder(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)

	candidates := []TimeSlot{
		{Start: day.Add(9 * time.Hour), DurationMinutes: 60},
		{Start: day.Add(10*time.Hour + 15*time.Minute), DurationMinutes: 60},
		{Start: day.Add(11*time.Hour + 30*time.Minute), DurationMinutes: 60},
	}
	booked := []*Appointment{
		{EventID: "evt-1", Start: day.Add(10 * time.Hour), DurationMinutes: 60},
	}

	free := FilterFreeSlots(candidates, booked)
	require.Len(t, free, 2)
	assert.True(t, free[0].Start.Equal(candidates[0].Start))
	assert.True(t, free[1].Start.Equal(candidates[2].Start))
}

func TestHasConflict_ExcludesEvent(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	booked := []*Appointment{
		{EventID: "evt-1", Start: day.Add(10 * time.Hour), DurationMinutes: 60},
	}

	assert.True(t, HasConflict(day.Add(10*time.Hour+30*time.Minute), 60, booked, ""))
	// Собственная запись исключается при переносе
	assert.False(t, HasConflict(day.Add(10*time.Hour+30*time.Minute), 60, booked, "evt-1"))
}

func TestBusinessHours_Validate(t *testing.T) {
	valid := BusinessHours{
		OpenLocal:      "09:00",
		CloseLocal:     "17:00",
		ActiveWeekdays: map[time.Weekday]bool{time.Monday: true},
	}
	assert.NoError(t, valid.Validate())

	inverted := valid
	inverted.OpenLocal, inverted.CloseLocal = "17:00", "09:00"
	assert.Error(t, inverted.Validate())

	noDays := valid
	noDays.ActiveWeekdays = nil
	assert.Error(t, noDays.Validate())

	badTime := valid
	badTime.OpenLocal = "25:99"
	assert.Error(t, badTime.Validate())
}
