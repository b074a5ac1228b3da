package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"ijuruhub/pkg/model"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func newTestMailer(apiKey string) (*Mailer, *[]*mail.SGMailV3) {
	var sent []*mail.SGMailV3
	m := NewMailer(MailerConfig{
		APIKey:         apiKey,
		FromEmail:      "noreply@ijuruhub.rw",
		FromName:       "IJURU HUB",
		AdminEmail:     "info@ijuruhub.rw",
		SupportPhone:   "+250798287944",
		SupportAddress: "42 KG 40 St, Kimironko, Kigali",
		PaymentNumber:  "+250798287944",
		Brand:          "IJURU HUB",
	}, testLogger())
	m.send = func(ctx context.Context, email *mail.SGMailV3) error {
		sent = append(sent, email)
		return nil
	}
	return m, &sent
}

func testBooking() *model.Booking {
	return &model.Booking{
		BookingReference: "HD-1724830000000-ABCDE",
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		SpaceName:        "Table 1 - Seat A",
		SpaceType:        model.SpaceTypeHotDesk,
		Date:             time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:             "09:00",
		Duration:         2,
		Price:            "5,000 RWF/hour",
		Status:           model.BookingStatusPending,
		PaymentStatus:    model.PaymentStatusPending,
	}
}

func TestBookingCreated_SendsToCustomer(t *testing.T) {
	m, sent := newTestMailer("SG.test")

	if err := m.BookingCreated(context.Background(), testBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(*sent))
	}

	email := (*sent)[0]
	if !strings.Contains(email.Subject, "HD-1724830000000-ABCDE") {
		t.Errorf("subject should carry the reference, got %q", email.Subject)
	}
	if email.Personalizations[0].To[0].Address != "jane@example.com" {
		t.Errorf("unexpected recipient: %s", email.Personalizations[0].To[0].Address)
	}
}

func TestBookingUpdated_OnlyMailsMeaningfulTransitions(t *testing.T) {
	tests := []struct {
		name    string
		updates *model.BookingUpdate
		want    int
		subject string
	}{
		{"confirmed", &model.BookingUpdate{Status: model.BookingStatusConfirmed}, 1, "Booking Confirmed"},
		{"paid", &model.BookingUpdate{PaymentStatus: model.PaymentStatusPaid}, 1, "Payment Confirmed"},
		{"completed", &model.BookingUpdate{Status: model.BookingStatusCompleted}, 0, ""},
		{"price change", &model.BookingUpdate{Price: "6,000 RWF/hour"}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sent := newTestMailer("SG.test")

			if err := m.BookingUpdated(context.Background(), testBooking(), tt.updates); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(*sent) != tt.want {
				t.Fatalf("expected %d emails, got %d", tt.want, len(*sent))
			}
			if tt.want == 1 && !strings.Contains((*sent)[0].Subject, tt.subject) {
				t.Errorf("expected subject containing %q, got %q", tt.subject, (*sent)[0].Subject)
			}
		})
	}
}

func TestContactReceived_MailsAdminAndUser(t *testing.T) {
	m, sent := newTestMailer("SG.test")

	contact := &model.Contact{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Interest:  model.SpaceTypeMeetingRoom,
		Message:   "Weekend availability?",
	}
	if err := m.ContactReceived(context.Background(), contact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*sent) != 2 {
		t.Fatalf("expected admin + user emails, got %d", len(*sent))
	}

	recipients := []string{
		(*sent)[0].Personalizations[0].To[0].Address,
		(*sent)[1].Personalizations[0].To[0].Address,
	}
	if recipients[0] != "info@ijuruhub.rw" || recipients[1] != "jane@example.com" {
		t.Errorf("unexpected recipients: %v", recipients)
	}
}

func TestMailer_SkipsWithoutAPIKey(t *testing.T) {
	m, sent := newTestMailer("")

	if err := m.BookingCreated(context.Background(), testBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*sent) != 0 {
		t.Errorf("no email should be sent without an API key, got %d", len(*sent))
	}
}
