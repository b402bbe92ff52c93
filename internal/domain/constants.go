package domain

// Значения конфигурации по умолчанию
const (
	DefaultDurationMinutes = 60
	DefaultBufferMinutes   = 15
	DefaultHorizonDays     = 30
)

// Ограничения бизнес-валидации
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 часов
	MinBufferMinutes   = 0
	MaxBufferMinutes   = 120
	MaxRangeDays       = 90 // максимальный диапазон поиска слотов
	MaxNotesLength     = 500
	MaxReasonLength    = 500
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
