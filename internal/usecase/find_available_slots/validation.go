package find_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до любых обращений к ledger
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}

	if req.EndDate.Sub(req.StartDate) > time.Duration(domain.MaxRangeDays)*24*time.Hour {
		return fmt.Errorf("%w: range is limited to %d days", ErrRangeTooLarge, domain.MaxRangeDays)
	}

	if !req.TimePreference.IsValid() {
		return fmt.Errorf("%w: unknown time preference %q", ErrInvalidInput, req.TimePreference)
	}

	return nil
}
