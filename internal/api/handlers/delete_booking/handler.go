package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/silkebeauty/SB-BookingService/internal/api/handlers"
	bookingsService "github.com/silkebeauty/SB-BookingService/internal/service/bookings"
)

const (
	msgMissingID       = "booking id is required"
	msgBookingNotFound = "booking not found"
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

// Handle DELETE /api/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["bookingId"]
	if id == "" {
		h.logger.Warn("DELETE /admin/bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings/{id} - Booking not found: id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete booking: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Booking deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
