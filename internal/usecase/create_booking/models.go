package create_booking

import (
	"time"

	"github.com/silkebeauty/SB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date     time.Time        // Дата записи (без времени)
	Time     types.TimeString // Время начала слота (например, "10:00")
	Name     string           // Имя клиента
	Email    string           // Почта клиента
	Phone    *string          // Телефон (опционально)
	Services []string         // Выбранные процедуры, минимум одна
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string    // UUID созданного бронирования
	CreatedAt time.Time // Время создания
}
