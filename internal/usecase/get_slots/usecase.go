package get_slots

import (
	"context"
	"fmt"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	"github.com/silkebeauty/SB-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
//
// Сводит три независимых источника в одну цифру вместимости на слот:
// 1. availability-события календаря задают рабочее окно дня
// 2. записи в хранилище занимают места в своих слотах
// 3. busy-события календаря занимают места в пересекающихся слотах
type UseCase struct {
	bookingRepo    BookingRepository
	calendarClient CalendarClient
	classify       Classifier
	logger         Logger

	capacity int
	duration int
	stride   int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendarClient CalendarClient,
	capacity int,
	durationMinutes int,
	strideMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		calendarClient: calendarClient,
		classify:       KeywordClassifier,
		logger:         logger,
		capacity:       capacity,
		duration:       durationMinutes,
		stride:         strideMinutes,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем события календаря
	// Ошибка календаря глушится: день без availability-событий = день без слотов,
	// клиент получает 200 с пустым списком, а не 500
	events, err := uc.calendarClient.ListEventsForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Warn("GetSlots: calendar unavailable for %s, degrading to empty event list: %v",
			req.Date.Format(domain.DateFormat), err)
		events = nil
	}

	// 3. Разбиваем события на Availability и Busy
	availability, busy := partitionEvents(events, uc.classify)

	// 4. Рабочее окно дня - первое availability-событие
	// Нет события = нет рабочих часов = нет слотов (дефолтного окна нет)
	windowStart, windowEnd, ok := availabilityWindow(availability)
	if !ok {
		uc.logger.Info("GetSlots: no availability window for %s, returning no slots",
			req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 5. Генерируем начала слотов
	starts := generateSlotStarts(windowStart, windowEnd, uc.duration, uc.stride)

	// 6. Считаем вместимость каждого слота
	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to format slot start: %v", ErrInternal, err)
		}

		// Ошибка хранилища - ошибка запроса, без деградации
		takenFromStore, err := uc.bookingRepo.CountForSlot(ctx, req.Date, startTime.String())
		if err != nil {
			uc.logger.Error("GetSlots: failed to count bookings for %s %s: %v",
				req.Date.Format(domain.DateFormat), startTime, err)
			return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		takenFromCalendar := countBusyOverlaps(start, start+uc.duration, busy)

		available := uc.capacity - (takenFromStore + takenFromCalendar)
		if available < 0 {
			available = 0
		}

		slots = append(slots, Slot{Time: startTime, Available: available})
	}

	uc.logger.Info("GetSlots: generated %d slots for %s (window %02d:%02d-%02d:%02d, %d busy events)",
		len(slots), req.Date.Format(domain.DateFormat),
		windowStart/60, windowStart%60, windowEnd/60, windowEnd%60, len(busy))

	return &Response{Date: req.Date, Slots: slots}, nil
}
