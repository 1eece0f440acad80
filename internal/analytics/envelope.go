package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownEventType = errors.New("unknown event type")

// Envelope is the broker representation of an Event.
type Envelope struct {
	EventID string          `json:"eventId"`
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func NewEnvelope(eventID string, e Event) (Envelope, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s event: %w", e.EventType(), err)
	}
	return Envelope{EventID: eventID, Type: e.EventType(), Payload: payload}, nil
}

func UnmarshalEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}
	return env, nil
}

// Decode returns the variant named by the envelope type.
func (env Envelope) Decode() (Event, error) {
	switch env.Type {
	case TypeProductView:
		var e ProductView
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		return e, nil
	case TypeCheckout:
		var e Checkout
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, env.Type)
}
