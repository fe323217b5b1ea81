package get_admin_bookings

import (
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	"github.com/silkebeauty/SB-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP-модель "сырого" бронирования для admin-панели
type BookingResponse struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone,omitempty"`
	Services  []string `json:"services"`
	CreatedAt string   `json:"createdAt"`
}

// FromServiceRecords конвертирует admin-модели сервиса в HTTP response
func FromServiceRecords(records []*models.BookingRecord) []BookingResponse {
	resp := make([]BookingResponse, len(records))
	for i, rec := range records {
		resp[i] = BookingResponse{
			ID:        rec.ID,
			Date:      rec.Date.Format(domain.DateFormat),
			Time:      rec.Time,
			Name:      rec.Name,
			Email:     rec.Email,
			Phone:     rec.Phone,
			Services:  rec.Services,
			CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}
