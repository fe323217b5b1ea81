package mailer

import "github.com/silkebeauty/SB-BookingService/internal/domain"

// NopMailer заглушка на случай, когда SMTP не сконфигурирован
// Логирует, какое письмо было бы отправлено
type NopMailer struct {
	log Logger
}

// NewNopMailer создает мейлер-заглушку
func NewNopMailer(log Logger) *NopMailer {
	return &NopMailer{log: log}
}

// SendBookingConfirmation логирует вместо отправки
func (m *NopMailer) SendBookingConfirmation(b *domain.Booking) error {
	m.log.Info("Email not configured; would send confirmation to %s for booking %s (%s %s)",
		b.Email, b.ID, b.Date.Format(domain.DateFormat), b.Time)
	return nil
}

// SendProviderNotification логирует вместо отправки
func (m *NopMailer) SendProviderNotification(b *domain.Booking) error {
	m.log.Info("Email not configured; would send provider notification for booking %s", b.ID)
	return nil
}
