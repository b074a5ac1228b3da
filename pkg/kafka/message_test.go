package kafka

import (
	"testing"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]string{"event": "booking.created", "reference": "HD-1-ABCDE"}

	msg, err := NewEvent("ijuruhub-api", "booking.created", "HD-1-ABCDE", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Key != "HD-1-ABCDE" {
		t.Errorf("unexpected key: %s", msg.Key)
	}
	if len(msg.Value) == 0 {
		t.Error("expected a serialized payload")
	}
	if msg.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}

	if msg.Headers[HeaderEventType] != "booking.created" {
		t.Errorf("unexpected event type header: %q", msg.Headers[HeaderEventType])
	}
	if msg.Headers[HeaderSource] != "ijuruhub-api" {
		t.Errorf("unexpected source header: %q", msg.Headers[HeaderSource])
	}
	if msg.Headers[HeaderEventID] == "" {
		t.Error("expected a generated event id")
	}

	var decoded map[string]string
	if err := msg.DecodeValue(&decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded["reference"] != "HD-1-ABCDE" {
		t.Errorf("round trip lost data: %v", decoded)
	}
}

func TestNewEvent_UnserializablePayload(t *testing.T) {
	if _, err := NewEvent("ijuruhub-api", "booking.created", "key", func() {}); err == nil {
		t.Error("expected an error for an unserializable payload")
	}
}
