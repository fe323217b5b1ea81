package get_calendar_debug

import (
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// CalendarDebugResponse HTTP-модель debug-ответа
type CalendarDebugResponse struct {
	OK     bool            `json:"ok"`
	Count  int             `json:"count"`
	Events []EventResponse `json:"events"`
}

// EventResponse "сырое" событие календаря
type EventResponse struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	AllDay      bool   `json:"allDay,omitempty"`
}

// FromDomainEvents конвертирует события календаря в HTTP response
func FromDomainEvents(events []*domain.CalendarEvent) *CalendarDebugResponse {
	resp := &CalendarDebugResponse{
		OK:     true,
		Count:  len(events),
		Events: make([]EventResponse, len(events)),
	}

	for i, event := range events {
		resp.Events[i] = EventResponse{
			ID:          event.ID,
			Summary:     event.Summary,
			Description: event.Description,
			Start:       formatEventTime(event.Start),
			End:         formatEventTime(event.End),
			AllDay:      event.Start.AllDay,
		}
	}

	return resp
}

func formatEventTime(t domain.EventTime) string {
	if t.AllDay {
		return t.DateTime.Format(domain.DateFormat)
	}
	return t.DateTime.Format(time.RFC3339)
}
