package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ijuruhub/pkg/logger"
	"ijuruhub/pkg/model"
)

type recordingSink struct {
	mu     sync.Mutex
	events []string

	err   error
	panic bool
}

func (s *recordingSink) record(event string) error {
	if s.panic {
		panic("sink exploded")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func (s *recordingSink) BookingCreated(ctx context.Context, booking *model.Booking) error {
	return s.record(EventBookingCreated)
}

func (s *recordingSink) BookingUpdated(ctx context.Context, booking *model.Booking, updates *model.BookingUpdate) error {
	return s.record(EventBookingUpdated)
}

func (s *recordingSink) BookingCancelled(ctx context.Context, booking *model.Booking, reason string) error {
	return s.record(EventBookingCancelled)
}

func (s *recordingSink) ContactReceived(ctx context.Context, contact *model.Contact) error {
	return s.record(EventContactReceived)
}

func (s *recordingSink) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	copy(out, s.events)
	return out
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestDispatcher_FansOutToAllSinks(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{}
	d := NewDispatcher(testLogger(), time.Second, first, second)

	booking := &model.Booking{BookingReference: "HD-1-ABCDE"}
	d.BookingCreated(booking)
	d.BookingCancelled(booking, "changed plans")
	d.ContactReceived(&model.Contact{Email: "jane@example.com"})
	d.Wait()

	for _, sink := range []*recordingSink{first, second} {
		events := sink.seen()
		if len(events) != 3 {
			t.Fatalf("expected 3 events per sink, got %v", events)
		}
	}
}

func TestDispatcher_SinkErrorDoesNotBlockOthers(t *testing.T) {
	failing := &recordingSink{err: errors.New("smtp down")}
	healthy := &recordingSink{}
	d := NewDispatcher(testLogger(), time.Second, failing, healthy)

	d.BookingUpdated(&model.Booking{BookingReference: "PO-1-ABCDE"}, &model.BookingUpdate{Status: model.BookingStatusConfirmed})
	d.Wait()

	if len(healthy.seen()) != 1 {
		t.Error("healthy sink should still receive the event")
	}
}

func TestDispatcher_RecoversFromSinkPanic(t *testing.T) {
	exploding := &recordingSink{panic: true}
	healthy := &recordingSink{}
	d := NewDispatcher(testLogger(), time.Second, exploding, healthy)

	d.BookingCreated(&model.Booking{BookingReference: "MR-1-ABCDE"})
	d.Wait()

	if len(healthy.seen()) != 1 {
		t.Error("a panicking sink must not take down the dispatcher")
	}
}

func TestDispatcher_WaitWithNoSinks(t *testing.T) {
	d := NewDispatcher(testLogger(), time.Second)
	d.BookingCreated(&model.Booking{})
	d.Wait()
}
