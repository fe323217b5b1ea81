package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	"github.com/silkebeauty/SB-BookingService/internal/infra/storage"
	"github.com/silkebeauty/SB-BookingService/internal/service/bookings/models"
)

// Service сервис admin-операций над бронированиями
// Admin-поверхность сознательно без аутентификации (как в исходной системе)
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByDate получает "сырые" бронирования на дату для admin-панели
func (s *Service) GetByDate(ctx context.Context, date time.Time) ([]*models.BookingRecord, error) {
	s.logger.Info("GetByDate: fetching bookings for %s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for %s", len(bookings), date.Format(domain.DateFormat))
	return models.FromDomainBookings(bookings), nil
}

// DeleteByID удаляет бронирование по ID
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	s.logger.Info("DeleteByID: deleting booking id=%s", id)

	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.bookingRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("DeleteByID: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteByID: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteByID: successfully deleted booking id=%s", id)
	return nil
}
