package types

import (
	"errors"
	"fmt"
	"time"
)

// timeStringFormat формат времени HH:MM
const timeStringFormat = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM" (без даты и таймзоны)
// Используется для рабочих часов и границ временных окон
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// MinutesFromMidnight возвращает количество минут с полуночи
func (t TimeString) MinutesFromMidnight() (int, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на minutes минут вперёд
// Переполнение за полночь не поддерживается - возвращается ошибка
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.MinutesFromMidnight()
	b, errB := other.MinutesFromMidnight()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.MinutesFromMidnight()
	b, errB := other.MinutesFromMidnight()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// OnDate совмещает время суток с датой в указанной таймзоне
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	minutes, err := t.MinutesFromMidnight()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}
