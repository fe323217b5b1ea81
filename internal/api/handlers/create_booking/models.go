package create_booking

import (
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	createBooking "github.com/silkebeauty/SB-BookingService/internal/usecase/create_booking"
	"github.com/silkebeauty/SB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date     string   `json:"date"` // "2025-10-15"
	Time     string   `json:"time"` // "10:00"
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    *string  `json:"phone,omitempty"`
	Services []string `json:"services"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID string `json:"id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Парсинг даты и времени; пустые строки проверяются отдельно,
// чтобы отличать "отсутствует" от "некорректный формат"
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:     date,
		Time:     startTime,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Services: r.Services,
	}, nil
}
