package get_calendar_debug

import (
	"context"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

type CalendarClient interface {
	ListEventsForDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
