package get_admin_bookings

import (
	"context"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByDate(ctx context.Context, date time.Time) ([]*models.BookingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
