package notify

import (
	"context"

	"ijuruhub/pkg/kafka"
	"ijuruhub/pkg/model"
)

const eventSource = "ijuruhub-api"

// Publisher is satisfied by kafka.Producer; tests swap in a recorder.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// EventSink publishes every booking/contact event to the domain-events topic,
// keyed by booking reference (or contact email) for per-entity ordering.
type EventSink struct {
	producer Publisher
}

func NewEventSink(producer Publisher) *EventSink {
	return &EventSink{producer: producer}
}

type bookingEventPayload struct {
	Event   string         `json:"event"`
	Booking *model.Booking `json:"booking"`
	Reason  string         `json:"reason,omitempty"`
}

type contactEventPayload struct {
	Event   string         `json:"event"`
	Contact *model.Contact `json:"contact"`
}

func (s *EventSink) BookingCreated(ctx context.Context, booking *model.Booking) error {
	return s.publishBooking(ctx, EventBookingCreated, booking, "")
}

func (s *EventSink) BookingUpdated(ctx context.Context, booking *model.Booking, _ *model.BookingUpdate) error {
	return s.publishBooking(ctx, EventBookingUpdated, booking, "")
}

func (s *EventSink) BookingCancelled(ctx context.Context, booking *model.Booking, reason string) error {
	return s.publishBooking(ctx, EventBookingCancelled, booking, reason)
}

func (s *EventSink) ContactReceived(ctx context.Context, contact *model.Contact) error {
	msg, err := kafka.NewEvent(eventSource, EventContactReceived, contact.Email, contactEventPayload{
		Event:   EventContactReceived,
		Contact: contact,
	})
	if err != nil {
		return err
	}
	return s.producer.Publish(ctx, msg)
}

func (s *EventSink) publishBooking(ctx context.Context, event string, booking *model.Booking, reason string) error {
	msg, err := kafka.NewEvent(eventSource, event, booking.BookingReference, bookingEventPayload{
		Event:   event,
		Booking: booking,
		Reason:  reason,
	})
	if err != nil {
		return err
	}
	return s.producer.Publish(ctx, msg)
}
