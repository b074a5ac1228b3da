package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Header keys attached to every published event.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// Message is one domain event bound for the events topic. Key picks the
// partition so events for the same entity stay ordered.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// NewEvent builds a message carrying the JSON-encoded payload with the
// standard headers filled in.
func NewEvent(source, eventType, key string, payload any) (Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	now := time.Now().UTC()
	return Message{
		Key:       key,
		Value:     value,
		Timestamp: now,
		Headers: map[string]string{
			HeaderEventID:   uuid.NewString(),
			HeaderEventType: eventType,
			HeaderSource:    source,
			HeaderTimestamp: now.Format(time.RFC3339),
		},
	}, nil
}

// DecodeValue decodes the payload into v.
func (m *Message) DecodeValue(v any) error {
	return json.Unmarshal(m.Value, v)
}
