package notification

import (
	"context"
	"fmt"

	"yalasafari/config"
	"yalasafari/models"

	"gopkg.in/gomail.v2"
)

// Mailer sends notification emails over SMTP. It implements Notifier
// with synchronous delivery and is normally driven by the mail worker
// rather than called from request handlers.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
}

// NewMailer builds a Mailer from the application config.
func NewMailer() (*Mailer, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is not configured")
	}
	return &Mailer{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:       cfg.EmailFrom,
		adminEmail: cfg.AdminEmail,
	}, nil
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) SafariBookingReceived(ctx context.Context, b *models.SafariBooking) error {
	// Admin alert first, then the customer acknowledgement. Both are
	// attempted even if the first fails.
	adminErr := m.send(m.adminEmail,
		fmt.Sprintf("New Safari Booking - %s", b.Reference),
		safariAdminAlertBody(b))
	customerErr := m.send(b.CustomerEmail,
		fmt.Sprintf("Booking Received - %s", b.Reference),
		safariPendingBody(b))

	if adminErr != nil {
		return adminErr
	}
	return customerErr
}

func (m *Mailer) SafariBookingConfirmed(ctx context.Context, b *models.SafariBooking) error {
	return m.send(b.CustomerEmail,
		fmt.Sprintf("Booking Confirmed - %s", b.Reference),
		safariConfirmedBody(b))
}

func (m *Mailer) SafariBookingRejected(ctx context.Context, b *models.SafariBooking, reason string) error {
	return m.send(b.CustomerEmail,
		fmt.Sprintf("Booking Update - %s", b.Reference),
		safariRejectedBody(b, reason))
}

func (m *Mailer) RoomBookingReceived(ctx context.Context, b *models.RoomBooking, room *models.Room) error {
	adminErr := m.send(m.adminEmail,
		fmt.Sprintf("New Room Booking - %s", b.Reference),
		roomBookingBody(b, room, true))
	customerErr := m.send(b.GuestEmail,
		fmt.Sprintf("Room Booking Received - %s", b.Reference),
		roomBookingBody(b, room, false))

	if adminErr != nil {
		return adminErr
	}
	return customerErr
}

func (m *Mailer) TaxiBookingReceived(ctx context.Context, b *models.TaxiBooking, taxi *models.Taxi) error {
	adminErr := m.send(m.adminEmail,
		fmt.Sprintf("New Taxi Booking - %s", b.Reference),
		taxiBookingBody(b, taxi, true))
	customerErr := m.send(b.CustomerEmail,
		fmt.Sprintf("Taxi Booking Received - %s", b.Reference),
		taxiBookingBody(b, taxi, false))

	if adminErr != nil {
		return adminErr
	}
	return customerErr
}

func (m *Mailer) ContactReceived(ctx context.Context, msg *models.ContactMessage) error {
	subject := msg.Subject
	if subject == "" {
		subject = "General enquiry"
	}
	adminErr := m.send(m.adminEmail,
		fmt.Sprintf("New Contact Message - %s", subject),
		contactAdminBody(msg))
	customerErr := m.send(msg.Email,
		"Thank you for contacting Yala Safari",
		contactThankYouBody(msg))

	if adminErr != nil {
		return adminErr
	}
	return customerErr
}
