package get_slots

import (
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	getSlots "github.com/silkebeauty/SB-BookingService/internal/usecase/get_slots"
)

// SlotResponse HTTP-модель одного слота
// Ответ endpoint'а - массив слотов, как в исходном API
type SlotResponse struct {
	Time      string `json:"time"`
	Available int    `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) []SlotResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из query-параметра date
func ToUseCaseRequest(dateStr string) (*getSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getSlots.Request{Date: date}, nil
}
