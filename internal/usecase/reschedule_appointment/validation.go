package reschedule_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до любых обращений к ledger
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.CurrentStart.IsZero() {
		return fmt.Errorf("%w: current start time is required", ErrInvalidInput)
	}

	if req.NewStart.IsZero() {
		return fmt.Errorf("%w: new start time is required", ErrInvalidInput)
	}

	if req.NewStart.Before(now) {
		return ErrStartInPast
	}

	return nil
}

// validateBusinessHours проверяет, что новое окно [start, start+duration)
// целиком попадает в рабочие часы своего дня недели
func validateBusinessHours(start time.Time, durationMinutes int, hours domain.BusinessHours, loc *time.Location) error {
	local := start.In(loc)

	if !hours.IsActiveDay(local.Weekday()) {
		return fmt.Errorf("%w: %s is not a working day", ErrOutsideBusinessHours, local.Weekday())
	}

	openAt, err := hours.OpenLocal.OnDate(local, loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	closeAt, err := hours.CloseLocal.OnDate(local, loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	end := local.Add(time.Duration(durationMinutes) * time.Minute)
	if local.Before(openAt) || end.After(closeAt) {
		return fmt.Errorf("%w: window %s-%s is outside %s-%s",
			ErrOutsideBusinessHours,
			local.Format(domain.TimeFormat), end.Format(domain.TimeFormat),
			hours.OpenLocal, hours.CloseLocal)
	}

	return nil
}
