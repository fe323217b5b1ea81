package get_slots

import (
	"net/http"

	"github.com/silkebeauty/SB-BookingService/internal/api/handlers"
)

const (
	msgMissingDate = "date query param required (YYYY-MM-DD)"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Календарь не роняет этот endpoint (usecase глушит его сам),
		// сюда доходят только ошибки хранилища
		h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, slots_count=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
