package notify

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"ijuruhub/pkg/logger"
	"ijuruhub/pkg/model"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// MailerConfig carries everything the mailer needs from the environment.
type MailerConfig struct {
	APIKey         string
	FromEmail      string
	FromName       string
	AdminEmail     string
	SupportPhone   string
	SupportAddress string
	PaymentNumber  string
	Brand          string
}

// Mailer renders the HTML emails and delivers them through SendGrid. It is a
// Sink: the dispatcher calls it off the request path and swallows failures.
type Mailer struct {
	cfg  MailerConfig
	log  *logger.Logger
	send func(ctx context.Context, email *mail.SGMailV3) error
}

func NewMailer(cfg MailerConfig, log *logger.Logger) *Mailer {
	sgClient := sendgrid.NewSendClient(cfg.APIKey)
	return &Mailer{
		cfg: cfg,
		log: log,
		send: func(ctx context.Context, email *mail.SGMailV3) error {
			resp, err := sgClient.SendWithContext(ctx, email)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 400 {
				return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
			}
			return nil
		},
	}
}

func (m *Mailer) BookingCreated(ctx context.Context, booking *model.Booking) error {
	data := m.bookingData(booking)
	data.Title = "Booking Received"
	data.Intro = fmt.Sprintf("We have received your booking request. Reference: %s", booking.BookingReference)

	subject := fmt.Sprintf("Booking Received • %s • %s", booking.BookingReference, m.cfg.Brand)
	return m.deliverBooking(ctx, booking, subject, data)
}

// BookingUpdated mails the customer only on the transitions worth announcing:
// status moving to confirmed or payment moving to paid.
func (m *Mailer) BookingUpdated(ctx context.Context, booking *model.Booking, updates *model.BookingUpdate) error {
	var subject string
	data := m.bookingData(booking)
	data.Title = "Booking Update"

	switch {
	case updates.Status == model.BookingStatusConfirmed:
		subject = fmt.Sprintf("Booking Confirmed • %s • %s", booking.BookingReference, m.cfg.Brand)
		data.Intro = fmt.Sprintf("Your booking has been confirmed! Reference: %s", booking.BookingReference)
	case updates.PaymentStatus == model.PaymentStatusPaid:
		subject = fmt.Sprintf("Payment Confirmed • %s • %s", booking.BookingReference, m.cfg.Brand)
		data.Intro = fmt.Sprintf("Thank you! Your payment has been confirmed. Reference: %s", booking.BookingReference)
	default:
		return nil
	}

	return m.deliverBooking(ctx, booking, subject, data)
}

func (m *Mailer) BookingCancelled(ctx context.Context, booking *model.Booking, reason string) error {
	data := m.bookingData(booking)
	data.Title = "Booking Cancelled"
	data.Intro = "We regret to inform you that your booking has been cancelled."
	data.Reason = reason
	data.PaymentPending = false

	subject := fmt.Sprintf("Booking Cancelled • %s • %s", booking.BookingReference, m.cfg.Brand)
	return m.deliverBooking(ctx, booking, subject, data)
}

// ContactReceived sends the admin notification and the user confirmation. Both
// are attempted even if the first fails.
func (m *Mailer) ContactReceived(ctx context.Context, contact *model.Contact) error {
	data := contactEmailData{
		Brand:          m.cfg.Brand,
		FirstName:      contact.FirstName,
		LastName:       contact.LastName,
		Email:          contact.Email,
		Phone:          contact.Phone,
		Interest:       contact.Interest,
		Message:        contact.Message,
		SubmittedAt:    time.Now().Format("02 Jan 2006 15:04"),
		SupportPhone:   m.cfg.SupportPhone,
		SupportEmail:   m.cfg.AdminEmail,
		SupportAddress: m.cfg.SupportAddress,
		Year:           time.Now().Year(),
	}

	var adminBody, userBody bytes.Buffer
	if err := contactAdminTemplate.Execute(&adminBody, data); err != nil {
		return fmt.Errorf("render admin contact email: %w", err)
	}
	if err := contactUserTemplate.Execute(&userBody, data); err != nil {
		return fmt.Errorf("render user contact email: %w", err)
	}

	adminPlain := fmt.Sprintf("New contact from %s %s <%s> about %s:\n\n%s",
		contact.FirstName, contact.LastName, contact.Email, contact.Interest, contact.Message)
	userPlain := fmt.Sprintf("Hi %s,\n\nThanks for reaching out about %s. Our team will get back to you within 24 hours.\n\n%s",
		contact.FirstName, contact.Interest, m.cfg.Brand)

	adminErr := m.deliver(ctx,
		m.cfg.AdminEmail, m.cfg.Brand,
		fmt.Sprintf("New Contact • %s • %s", contact.Interest, m.cfg.Brand),
		adminPlain, adminBody.String(),
	)
	userErr := m.deliver(ctx,
		contact.Email, contact.FirstName,
		fmt.Sprintf("Thanks for contacting %s", m.cfg.Brand),
		userPlain, userBody.String(),
	)

	if adminErr != nil {
		return adminErr
	}
	return userErr
}

func (m *Mailer) bookingData(booking *model.Booking) bookingEmailData {
	return bookingEmailData{
		Brand:          m.cfg.Brand,
		Name:           booking.Name,
		Reference:      booking.BookingReference,
		SpaceName:      booking.SpaceName,
		SpaceType:      booking.SpaceType,
		Date:           booking.Date.Format("02 Jan 2006"),
		Time:           booking.Time,
		Duration:       booking.Duration,
		Price:          booking.Price,
		Status:         booking.Status,
		PaymentStatus:  booking.PaymentStatus,
		PaymentPending: booking.PaymentStatus == model.PaymentStatusPending,
		PaymentNumber:  m.cfg.PaymentNumber,
		SupportPhone:   m.cfg.SupportPhone,
		SupportEmail:   m.cfg.AdminEmail,
		Year:           time.Now().Year(),
	}
}

func (m *Mailer) deliverBooking(ctx context.Context, booking *model.Booking, subject string, data bookingEmailData) error {
	var body bytes.Buffer
	if err := bookingTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render booking email: %w", err)
	}

	plain := fmt.Sprintf("Hi %s,\n\n%s\n\nSpace: %s (%s)\nDate: %s\nTime: %s (%d hours)\nPrice: %s\n\n%s",
		booking.Name, data.Intro, booking.SpaceName, booking.SpaceType,
		data.Date, booking.Time, booking.Duration, booking.Price, m.cfg.Brand)

	return m.deliver(ctx, booking.Email, booking.Name, subject, plain, body.String())
}

func (m *Mailer) deliver(ctx context.Context, toEmail, toName, subject, plain, html string) error {
	if m.cfg.APIKey == "" {
		m.log.Debug("SendGrid API key not configured, skipping email", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	email := mail.NewSingleEmail(from, subject, to, plain, html)

	if err := m.send(ctx, email); err != nil {
		return fmt.Errorf("send email to %s: %w", toEmail, err)
	}

	m.log.Info("Email sent", "to", toEmail, "subject", subject)
	return nil
}
