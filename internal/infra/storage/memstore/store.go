package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	"github.com/silkebeauty/SB-BookingService/internal/infra/storage"
)

// ErrBookingNotFound возвращается, когда бронирование не найдено
// Алиас общего сентинела хранилища
var ErrBookingNotFound = storage.ErrBookingNotFound

// Store in-memory хранилище бронирований: map дата -> записи
// Используется для локальной разработки и как fallback-бэкенд без PostgreSQL
// Данные живут только в памяти процесса
type Store struct {
	mu             sync.RWMutex
	bookingsByDate map[string][]*domain.Booking
}

// NewStore создает пустое in-memory хранилище
func NewStore() *Store {
	return &Store{
		bookingsByDate: make(map[string][]*domain.Booking),
	}
}

// Create сохраняет новое бронирование
func (s *Store) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *b
	stored.CreatedAt = time.Now()

	key := dateKey(b.Date)
	s.bookingsByDate[key] = append(s.bookingsByDate[key], &stored)

	b.CreatedAt = stored.CreatedAt
	return b, nil
}

// GetByDate получает все бронирования на указанную дату
// Возвращает копию среза, чтобы вызывающий не мог изменить хранилище
func (s *Store) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.bookingsByDate[dateKey(date)]
	bookings := make([]*domain.Booking, len(stored))
	copy(bookings, stored)
	return bookings, nil
}

// CountForSlot подсчитывает бронирования на конкретный слот (date, time)
func (s *Store) CountForSlot(_ context.Context, date time.Time, startTime string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, b := range s.bookingsByDate[dateKey(date)] {
		if b.Time.String() == startTime {
			count++
		}
	}
	return count, nil
}

// DeleteByID удаляет бронирование по ID
func (s *Store) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, bookings := range s.bookingsByDate {
		for i, b := range bookings {
			if b.ID == id {
				s.bookingsByDate[key] = append(bookings[:i], bookings[i+1:]...)
				if len(s.bookingsByDate[key]) == 0 {
					delete(s.bookingsByDate, key)
				}
				return nil
			}
		}
	}

	return ErrBookingNotFound
}

// DeleteOlderThan удаляет бронирования с датой строго раньше cutoff
// Параметр batchSize принят для симметрии с PostgreSQL-репозиторием:
// в памяти чанкование не нужно
func (s *Store) DeleteOlderThan(_ context.Context, cutoff time.Time, _ int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for key, bookings := range s.bookingsByDate {
		kept := bookings[:0]
		for _, b := range bookings {
			if b.IsOlderThan(cutoff) {
				deleted++
				continue
			}
			kept = append(kept, b)
		}

		if len(kept) == 0 {
			delete(s.bookingsByDate, key)
		} else {
			s.bookingsByDate[key] = kept
		}
	}

	return deleted, nil
}

// dateKey ключ карты для даты (время обнуляется)
func dateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}
