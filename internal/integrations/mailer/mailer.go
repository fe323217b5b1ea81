package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer отправляет уведомления по SMTP
// Вызывается только из notification fan-out: ошибки логируются диспетчером
// и никогда не влияют на результат бронирования
type Mailer struct {
	dialer        *gomail.Dialer
	from          string
	providerEmail string
	log           Logger
}

// NewMailer создает SMTP-мейлер
func NewMailer(host string, port int, user, password, from, providerEmail string, log Logger) *Mailer {
	return &Mailer{
		dialer:        gomail.NewDialer(host, port, user, password),
		from:          from,
		providerEmail: providerEmail,
		log:           log,
	}
}

// SendBookingConfirmation отправляет клиенту подтверждение записи
func (m *Mailer) SendBookingConfirmation(b *domain.Booking) error {
	subject := fmt.Sprintf("Bevestiging reservering %s %s", b.Date.Format(domain.DateFormat), b.Time)
	body := fmt.Sprintf(
		"Beste %s,\n\nJe reservering op %s om %s is bevestigd.\n\nBehandelingen: %s\n\nGroeten,\nSilke Beauty",
		b.Name, b.Date.Format(domain.DateFormat), b.Time, servicesLine(b),
	)

	if err := m.send(b.Email, subject, body); err != nil {
		return fmt.Errorf("mailer: booking confirmation: %w", err)
	}

	m.log.Info("Sent booking confirmation to %s for booking %s", b.Email, b.ID)
	return nil
}

// SendProviderNotification уведомляет мастера о новой записи
func (m *Mailer) SendProviderNotification(b *domain.Booking) error {
	if m.providerEmail == "" {
		m.log.Warn("Provider email not configured; skipping provider notification for booking %s", b.ID)
		return nil
	}

	phone := "-"
	if b.Phone != nil && *b.Phone != "" {
		phone = *b.Phone
	}

	subject := fmt.Sprintf("Nieuwe reservering %s %s", b.Date.Format(domain.DateFormat), b.Time)
	body := fmt.Sprintf(
		"Nieuwe reservering:\n\nNaam: %s\nTel: %s\nE-mail: %s\nDatum: %s\nTijd: %s\nBehandelingen: %s",
		b.Name, phone, b.Email, b.Date.Format(domain.DateFormat), b.Time, servicesLine(b),
	)

	if err := m.send(m.providerEmail, subject, body); err != nil {
		return fmt.Errorf("mailer: provider notification: %w", err)
	}

	m.log.Info("Sent provider notification for booking %s", b.ID)
	return nil
}

// send отправляет одно письмо
func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

// servicesLine форматирует список процедур для письма
func servicesLine(b *domain.Booking) string {
	if len(b.Services) == 0 {
		return "-"
	}
	return strings.Join(b.Services, ", ")
}
