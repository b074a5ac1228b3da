// Package notify delivers best-effort side effects (email, domain events)
// after a successful state transition. Delivery runs outside the request path
// and failures are logged, never surfaced to the HTTP caller.
package notify

import (
	"context"
	"sync"
	"time"

	"ijuruhub/pkg/logger"
	"ijuruhub/pkg/model"
)

// Event types published by the coordinator and contact service.
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventContactReceived  = "contact.received"
)

// Sink consumes booking and contact events. Implementations must be safe for
// concurrent use; the dispatcher calls them from separate goroutines.
type Sink interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
	BookingUpdated(ctx context.Context, booking *model.Booking, updates *model.BookingUpdate) error
	BookingCancelled(ctx context.Context, booking *model.Booking, reason string) error
	ContactReceived(ctx context.Context, contact *model.Contact) error
}

// Dispatcher fans events out to its sinks asynchronously. Each delivery gets
// its own context with a deadline, detached from the triggering request, so a
// slow mail provider cannot hold a response hostage. Wait drains in-flight
// deliveries; tests use it to make the fire-and-forget path deterministic.
type Dispatcher struct {
	sinks   []Sink
	log     *logger.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(log *logger.Logger, timeout time.Duration, sinks ...Sink) *Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{
		sinks:   sinks,
		log:     log,
		timeout: timeout,
	}
}

func (d *Dispatcher) BookingCreated(booking *model.Booking) {
	d.dispatch(EventBookingCreated, booking.BookingReference, func(ctx context.Context, s Sink) error {
		return s.BookingCreated(ctx, booking)
	})
}

func (d *Dispatcher) BookingUpdated(booking *model.Booking, updates *model.BookingUpdate) {
	d.dispatch(EventBookingUpdated, booking.BookingReference, func(ctx context.Context, s Sink) error {
		return s.BookingUpdated(ctx, booking, updates)
	})
}

func (d *Dispatcher) BookingCancelled(booking *model.Booking, reason string) {
	d.dispatch(EventBookingCancelled, booking.BookingReference, func(ctx context.Context, s Sink) error {
		return s.BookingCancelled(ctx, booking, reason)
	})
}

func (d *Dispatcher) ContactReceived(contact *model.Contact) {
	d.dispatch(EventContactReceived, contact.Email, func(ctx context.Context, s Sink) error {
		return s.ContactReceived(ctx, contact)
	})
}

// Wait blocks until every delivery dispatched so far has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(event, key string, deliver func(context.Context, Sink) error) {
	for _, sink := range d.sinks {
		d.wg.Add(1)
		go func(s Sink) {
			defer d.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					d.log.Error("Notification sink panicked", "event", event, "key", key, "panic", r)
				}
			}()

			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()

			if err := deliver(ctx, s); err != nil {
				d.log.Warn("Notification delivery failed", "event", event, "key", key, "error", err)
			}
		}(sink)
	}
}
