package cancel_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.Start != nil && req.Start.IsZero() {
		return fmt.Errorf("%w: start time must not be zero when provided", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}
