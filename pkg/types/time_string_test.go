package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"", "9:30:00", "24:00", "12:60", "noon"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	ts := TimeString("13:45")
	minutes, err := ts.MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(75)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), shifted)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	date := time.Date(2030, 6, 10, 0, 0, 0, 0, loc)
	at, err := TimeString("09:30").OnDate(date, loc)
	require.NoError(t, err)

	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, loc, at.Location())
}

func TestNewTimeString(t *testing.T) {
	at := time.Date(2030, 6, 10, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(at))
}
