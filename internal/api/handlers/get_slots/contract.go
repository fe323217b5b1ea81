package get_slots

import (
	"context"

	getSlots "github.com/silkebeauty/SB-BookingService/internal/usecase/get_slots"
)

type GetSlotsUseCase interface {
	Execute(ctx context.Context, req *getSlots.Request) (*getSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
