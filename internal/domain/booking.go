package domain

import (
	"time"

	"github.com/silkebeauty/SB-BookingService/pkg/types"
)

// Booking represents a customer appointment in the system
// Записи иммутабельны: создаются один раз при admission, никогда не изменяются,
// удаляются только retention-очисткой или вручную через admin API
type Booking struct {
	ID       string           // UUID, генерируется при создании
	Date     time.Time        // Дата записи (без времени) - ключ партиционирования
	Time     types.TimeString // Время начала слота ("10:00")
	Name     string
	Email    string
	Phone    *string  // Опционально
	Services []string // Выбранные процедуры, минимум одна

	CreatedAt time.Time
}

// IsOlderThan returns true if the booking date is strictly before the cutoff date
func (b *Booking) IsOlderThan(cutoff time.Time) bool {
	dateOnly := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, b.Date.Location())
	cutoffOnly := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, cutoff.Location())
	return dateOnly.Before(cutoffOnly)
}
