package get_calendar_debug

import (
	"net/http"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/api/handlers"
	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

type Handler struct {
	calendarClient CalendarClient
	logger         Logger
}

func NewHandler(calendarClient CalendarClient, logger Logger) *Handler {
	return &Handler{
		calendarClient: calendarClient,
		logger:         logger,
	}
}

// Handle GET /api/admin/calendar?date=YYYY-MM-DD
// Debug passthrough "сырых" событий календаря. Единственный endpoint,
// где ошибка календаря видна наружу (в отличие от /slots)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		// Как в исходной системе: без даты показываем сегодня
		dateStr = time.Now().Format(domain.DateFormat)
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	events, err := h.calendarClient.ListEventsForDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/calendar - Failed to fetch events: date=%s, error=%v", dateStr, err)
		handlers.RespondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}

	h.logger.Info("GET /admin/calendar - Events fetched: date=%s, count=%d", dateStr, len(events))
	handlers.RespondJSON(w, http.StatusOK, FromDomainEvents(events))
}
