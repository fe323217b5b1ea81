package googlecalendar

import (
	"fmt"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// eventsListResponse ответ calendar API на events.list
type eventsListResponse struct {
	Items []eventItem `json:"items"`
}

// eventItem одно событие календаря в wire-формате
type eventItem struct {
	ID          string       `json:"id"`
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
	Start       eventTimeDTO `json:"start"`
	End         eventTimeDTO `json:"end"`
}

// eventTimeDTO начало/конец события: либо dateTime, либо date (весь день)
type eventTimeDTO struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// toDomain конвертирует wire-событие в доменную модель
func (e *eventItem) toDomain(loc *time.Location) (*domain.CalendarEvent, error) {
	start, err := e.Start.toDomain(loc)
	if err != nil {
		return nil, fmt.Errorf("event %s: invalid start: %w", e.ID, err)
	}

	end, err := e.End.toDomain(loc)
	if err != nil {
		return nil, fmt.Errorf("event %s: invalid end: %w", e.ID, err)
	}

	return &domain.CalendarEvent{
		ID:          e.ID,
		Summary:     e.Summary,
		Description: e.Description,
		Start:       start,
		End:         end,
	}, nil
}

// toDomain парсит wire-время в доменное
func (t *eventTimeDTO) toDomain(loc *time.Location) (domain.EventTime, error) {
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return domain.EventTime{}, err
		}
		return domain.EventTime{DateTime: parsed.In(loc)}, nil
	}

	if t.Date != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, t.Date, loc)
		if err != nil {
			return domain.EventTime{}, err
		}
		return domain.EventTime{DateTime: parsed, AllDay: true}, nil
	}

	return domain.EventTime{}, fmt.Errorf("neither dateTime nor date is set")
}

// insertEventRequest тело запроса events.insert
type insertEventRequest struct {
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
	Start       eventTimeDTO `json:"start"`
	End         eventTimeDTO `json:"end"`
}

// insertEventResponse ответ calendar API на events.insert
type insertEventResponse struct {
	ID string `json:"id"`
}
