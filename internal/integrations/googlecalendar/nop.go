package googlecalendar

import (
	"context"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// NopClient заглушка на случай, когда календарь не сконфигурирован
// Выбирается один раз при старте по конфигурации, а не через runtime-фоллбэк:
// сервис продолжает работать, календарь просто "не имеет мнения"
type NopClient struct {
	log Logger
}

// NewNopClient создает клиент-заглушку
func NewNopClient(log Logger) *NopClient {
	return &NopClient{log: log}
}

// ListEventsForDate возвращает пустой список событий
func (c *NopClient) ListEventsForDate(_ context.Context, _ time.Time) ([]*domain.CalendarEvent, error) {
	return []*domain.CalendarEvent{}, nil
}

// CreateEvent логирует, какое событие было бы создано
func (c *NopClient) CreateEvent(_ context.Context, b *domain.Booking, _ int) error {
	c.log.Info("Calendar not configured; would create event for booking %s (%s %s)",
		b.ID, b.Date.Format(domain.DateFormat), b.Time)
	return nil
}
