package get_admin_bookings

import (
	"net/http"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/api/handlers"
	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

const (
	msgMissingDate = "date query param required (YYYY-MM-DD)"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/bookings - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	records, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to get bookings: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: date=%s, count=%d", dateStr, len(records))
	handlers.RespondJSON(w, http.StatusOK, FromServiceRecords(records))
}
