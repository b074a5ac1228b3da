package validator

import (
	"errors"
	"strings"
	"testing"
	"time"

	"ijuruhub/pkg/model"
)

func validBooking() *model.Booking {
	return &model.Booking{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+250788123456",
		SpaceID:   "hd1",
		SpaceName: "Table 1 - Seat A",
		SpaceType: model.SpaceTypeHotDesk,
		Date:      time.Now().UTC().Add(24 * time.Hour),
		Time:      "09:00",
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	v := NewBookingValidator()

	tests := []struct {
		name   string
		mutate func(*model.Booking)
		field  string
	}{
		{"missing name", func(b *model.Booking) { b.Name = "" }, "Name"},
		{"missing email", func(b *model.Booking) { b.Email = "" }, "Email"},
		{"missing phone", func(b *model.Booking) { b.Phone = "" }, "Phone"},
		{"missing space id", func(b *model.Booking) { b.SpaceID = "" }, "SpaceID"},
		{"missing time", func(b *model.Booking) { b.Time = "" }, "Time"},
		{"zero date", func(b *model.Booking) { b.Date = time.Time{} }, "Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(booking)

			err := v.Validate(booking)
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}

			found := false
			for _, ve := range verrs {
				if ve.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for field %s, got %v", tt.field, verrs)
			}
		})
	}
}

func TestValidate_InvalidEmail(t *testing.T) {
	v := NewBookingValidator()
	booking := validBooking()
	booking.Email = "not-an-email"

	err := v.Validate(booking)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if !strings.Contains(verrs.Error(), "Email") {
		t.Errorf("expected an Email error, got %v", verrs)
	}
}

func TestValidate_PastDate(t *testing.T) {
	v := NewBookingValidator()
	booking := validBooking()
	booking.Date = time.Now().UTC().Add(-24 * time.Hour)

	err := v.Validate(booking)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Message != "Cannot book for past dates" {
		t.Errorf("unexpected message: %s", verrs[0].Message)
	}
}

func TestValidate_TodayIsAllowed(t *testing.T) {
	v := NewBookingValidator()
	booking := validBooking()
	booking.Date = time.Now().UTC()

	if err := v.Validate(booking); err != nil {
		t.Errorf("booking for today must be valid, got %v", err)
	}
}

func TestValidate_UnknownSpaceType(t *testing.T) {
	v := NewBookingValidator()
	booking := validBooking()
	booking.SpaceType = "Penthouse"

	err := v.Validate(booking)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Field != "SpaceType" {
		t.Errorf("expected SpaceType error, got %v", verrs)
	}
}

func TestValidate_BadEnumOnBooking(t *testing.T) {
	v := NewBookingValidator()
	booking := validBooking()
	booking.Status = "maybe"

	if err := v.Validate(booking); err == nil {
		t.Error("expected error for out-of-enum status")
	}
}

func TestValidateUpdate(t *testing.T) {
	v := NewBookingValidator()
	badDuration := 0
	goodDuration := 2

	tests := []struct {
		name    string
		update  *model.BookingUpdate
		wantErr bool
	}{
		{"nil update", nil, true},
		{"empty update", &model.BookingUpdate{}, true},
		{"valid status", &model.BookingUpdate{Status: model.BookingStatusConfirmed}, false},
		{"invalid status", &model.BookingUpdate{Status: "bogus"}, true},
		{"valid payment status", &model.BookingUpdate{PaymentStatus: model.PaymentStatusPaid}, false},
		{"invalid payment status", &model.BookingUpdate{PaymentStatus: "iou"}, true},
		{"zero duration", &model.BookingUpdate{Duration: &badDuration}, true},
		{"positive duration", &model.BookingUpdate{Duration: &goodDuration}, false},
		{"price only", &model.BookingUpdate{Price: "6,000 RWF/hour"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUpdate(tt.update)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
