package tools

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// Формат даты-времени без таймзоны, который модель получает в описании
// инструментов. Интерпретируется в таймзоне бизнеса
const naiveDateTimeFormat = "2006-01-02T15:04:05"

// parseDate разбирает дату YYYY-MM-DD в таймзоне бизнеса
func parseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// parseDateTime разбирает дату-время: сперва ISO с таймзоной (RFC3339),
// затем naive-формат в таймзоне бизнеса
func parseDateTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(naiveDateTimeFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q, expected YYYY-MM-DDTHH:MM:SS", value)
	}
	return t, nil
}

// formatSlotDisplay форматирует слот для озвучивания голосовым агентом,
// например "Monday, January 2 at 9:00 AM"
func formatSlotDisplay(t time.Time) string {
	return t.Format("Monday, January 2 at 3:04 PM")
}
