package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	"github.com/silkebeauty/SB-BookingService/internal/notify"
)

// UseCase use case для создания бронирования (admission)
//
// Проверка вместимости и запись выполняются в одной сериализуемой транзакции
// (для in-memory бэкенда - под общим мьютексом), поэтому два конкурентных
// запроса на один слот не могут оба пройти проверку до записи.
// Busy-события календаря при admission НЕ перепроверяются - только при
// листинге слотов; это принятое окно неконсистентности
type UseCase struct {
	bookingRepo    BookingRepository
	txManager      TransactionManager
	calendarClient CalendarClient
	mailer         Mailer
	dispatcher     Dispatcher
	logger         Logger

	capacity int
	duration int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	calendarClient CalendarClient,
	mailer Mailer,
	dispatcher Dispatcher,
	capacity int,
	durationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		txManager:      txManager,
		calendarClient: calendarClient,
		mailer:         mailer,
		dispatcher:     dispatcher,
		logger:         logger,
		capacity:       capacity,
		duration:       durationMinutes,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, email=%s",
		req.Date.Format(domain.DateFormat), req.Time, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		ID:       uuid.NewString(),
		Date:     req.Date,
		Time:     req.Time,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Services: req.Services,
	}

	// 2. Проверка вместимости + запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.bookingRepo.CountForSlot(txCtx, req.Date, req.Time.String())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count bookings for %s %s: %v",
				req.Date.Format(domain.DateFormat), req.Time, err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		if taken >= uc.capacity {
			uc.logger.Warn("CreateBooking: slot %s %s is full (%d/%d)",
				req.Date.Format(domain.DateFormat), req.Time, taken, uc.capacity)
			return ErrSlotFull
		}

		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	// 3. Fire-and-forget fan-out уведомлений
	// Не ждём и не откатываем бронирование при сбоях: ошибки видны
	// только в логах и метриках диспетчера
	uc.submitNotifications(booking)

	return &Response{ID: booking.ID, CreatedAt: booking.CreatedAt}, nil
}

// submitNotifications ставит в диспетчер задачи уведомлений о новой записи
// Задачи получают context.Background(): они переживают HTTP-запрос
func (uc *UseCase) submitNotifications(booking *domain.Booking) {
	uc.dispatcher.Submit(notify.Task{
		Name: "booking_confirmation_email",
		Run: func() error {
			return uc.mailer.SendBookingConfirmation(booking)
		},
	})

	uc.dispatcher.Submit(notify.Task{
		Name: "provider_notification_email",
		Run: func() error {
			return uc.mailer.SendProviderNotification(booking)
		},
	})

	uc.dispatcher.Submit(notify.Task{
		Name: "calendar_event",
		Run: func() error {
			return uc.calendarClient.CreateEvent(context.Background(), booking, uc.duration)
		},
	})
}
