package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/pkg/types"
)

// BusinessHours рабочие часы бизнеса
// Инвариант: OpenLocal строго раньше CloseLocal
type BusinessHours struct {
	OpenLocal      types.TimeString
	CloseLocal     types.TimeString
	ActiveWeekdays map[time.Weekday]bool
}

// Validate проверяет корректность рабочих часов
func (h BusinessHours) Validate() error {
	if err := h.OpenLocal.Validate(); err != nil {
		return fmt.Errorf("invalid open time: %w", err)
	}
	if err := h.CloseLocal.Validate(); err != nil {
		return fmt.Errorf("invalid close time: %w", err)
	}
	if !h.OpenLocal.IsBefore(h.CloseLocal) {
		return fmt.Errorf("open time %s must be before close time %s", h.OpenLocal, h.CloseLocal)
	}
	if len(h.ActiveWeekdays) == 0 {
		return fmt.Errorf("at least one active weekday is required")
	}
	return nil
}

// IsActiveDay проверяет, что день недели рабочий
func (h BusinessHours) IsActiveDay(day time.Weekday) bool {
	return h.ActiveWeekdays[day]
}
