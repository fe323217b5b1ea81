package get_slots

import (
	"context"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountForSlot подсчитывает бронирования на конкретный слот (date, time)
	CountForSlot(ctx context.Context, date time.Time, startTime string) (int, error)
}

// CalendarClient интерфейс клиента внешнего календаря
type CalendarClient interface {
	ListEventsForDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
