package find_available_slots

import (
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// generateTimeGrid генерирует сетку кандидатов слотов для диапазона дат
// Чистая функция от входов: для каждого рабочего дня слоты идут от открытия
// с шагом duration + buffer, пока слот целиком помещается до закрытия.
// Слоты, начинающиеся раньше момента now, не выдаются (слот никогда
// не предлагается в прошлом). День короче длительности дает ноль слотов -
// это не ошибка
func generateTimeGrid(
	startDate, endDate time.Time,
	durationMinutes, bufferMinutes int,
	hours domain.BusinessHours,
	loc *time.Location,
	now time.Time,
) ([]domain.TimeSlot, error) {
	step := time.Duration(durationMinutes+bufferMinutes) * time.Minute
	duration := time.Duration(durationMinutes) * time.Minute

	slots := make([]domain.TimeSlot, 0)

	day := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, loc)
	lastDay := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc)

	for !day.After(lastDay) {
		if !hours.IsActiveDay(day.Weekday()) {
			day = day.AddDate(0, 0, 1)
			continue
		}

		openAt, err := hours.OpenLocal.OnDate(day, loc)
		if err != nil {
			return nil, err
		}
		closeAt, err := hours.CloseLocal.OnDate(day, loc)
		if err != nil {
			return nil, err
		}

		for cur := openAt; !cur.Add(duration).After(closeAt); cur = cur.Add(step) {
			if cur.Before(now) {
				continue
			}
			slots = append(slots, domain.TimeSlot{
				Start:           cur,
				DurationMinutes: durationMinutes,
			})
		}

		day = day.AddDate(0, 0, 1)
	}

	return slots, nil
}

// filterByPreference отбирает слоты по предпочтительному времени суток
// Порядок слотов сохраняется
func filterByPreference(slots []domain.TimeSlot, pref domain.TimePreference) []domain.TimeSlot {
	if pref == "" || pref == domain.PreferenceAny {
		return slots
	}

	filtered := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if pref.Matches(slot.Start) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
