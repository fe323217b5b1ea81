package models

import (
	"time"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// BookingRecord "сырое" бронирование для admin-ответов
type BookingRecord struct {
	ID        string
	Date      time.Time
	Time      string
	Name      string
	Email     string
	Phone     *string
	Services  []string
	CreatedAt time.Time
}

// FromDomainBooking конвертирует доменную модель в admin-модель
func FromDomainBooking(b *domain.Booking) *BookingRecord {
	return &BookingRecord{
		ID:        b.ID,
		Date:      b.Date,
		Time:      b.Time.String(),
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Services:  b.Services,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookings конвертирует список доменных моделей
func FromDomainBookings(bookings []*domain.Booking) []*BookingRecord {
	records := make([]*BookingRecord, len(bookings))
	for i, b := range bookings {
		records[i] = FromDomainBooking(b)
	}
	return records
}
