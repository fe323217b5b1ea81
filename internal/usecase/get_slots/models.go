package get_slots

import (
	"time"

	"github.com/silkebeauty/SB-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Слоты по возрастанию времени начала
}

// Slot модель временного слота
type Slot struct {
	Time      types.TimeString // Время начала слота (например, "10:00")
	Available int              // Количество свободных мест, 0 <= Available <= capacity
}
