package create_booking

import (
	"fmt"
	"strings"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Обязательны date, time, name, email и хотя бы одна процедура
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if len(req.Services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, service := range req.Services {
		if strings.TrimSpace(service) == "" {
			return fmt.Errorf("%w: service label must not be empty", ErrInvalidInput)
		}
		if len(service) > domain.MaxServiceLabelLength {
			return fmt.Errorf("%w: service label is too long", ErrInvalidInput)
		}
	}

	return nil
}
