package create_booking

import (
	"context"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	"github.com/silkebeauty/SB-BookingService/internal/notify"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountForSlot(ctx context.Context, date time.Time, startTime string) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
// Сериализует проверку вместимости и запись бронирования
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CalendarClient интерфейс клиента внешнего календаря (только запись)
type CalendarClient interface {
	CreateEvent(ctx context.Context, booking *domain.Booking, durationMinutes int) error
}

// Mailer интерфейс отправки почтовых уведомлений
type Mailer interface {
	SendBookingConfirmation(booking *domain.Booking) error
	SendProviderNotification(booking *domain.Booking) error
}

// Dispatcher интерфейс неблокирующего диспетчера fire-and-forget задач
type Dispatcher interface {
	Submit(task notify.Task) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
