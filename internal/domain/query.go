package domain

import "time"

// TimePreference предпочтительное время суток для поиска слотов
type TimePreference string

const (
	PreferenceMorning   TimePreference = "morning"   // до 12:00 локального времени
	PreferenceAfternoon TimePreference = "afternoon" // 12:00 - 17:00
	PreferenceEvening   TimePreference = "evening"   // после 17:00
	PreferenceAny       TimePreference = "any"
)

// IsValid проверяет, что значение предпочтения допустимо
func (p TimePreference) IsValid() bool {
	switch p {
	case PreferenceMorning, PreferenceAfternoon, PreferenceEvening, PreferenceAny, "":
		return true
	default:
		return false
	}
}

// Matches проверяет, что момент start попадает в предпочтительное окно
func (p TimePreference) Matches(start time.Time) bool {
	switch p {
	case PreferenceMorning:
		return start.Hour() < 12
	case PreferenceAfternoon:
		return start.Hour() >= 12 && start.Hour() < 17
	case PreferenceEvening:
		return start.Hour() >= 17
	default:
		return true
	}
}

// SlotQuery параметры поиска доступных слотов
// Инвариант: StartDate не позже EndDate
type SlotQuery struct {
	ServiceName    string
	StartDate      time.Time
	EndDate        time.Time
	StaffName      *string
	TimePreference TimePreference
}
