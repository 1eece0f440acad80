package analytics

import (
	"context"

	"github.com/google/uuid"
)

// Sink delivers a keyed message, typically to a Kafka topic.
type Sink interface {
	Publish(ctx context.Context, key string, value any) error
}

// Publisher wraps events in envelopes and hands them to a Sink.
type Publisher struct {
	sink  Sink
	newID func() string
}

func NewPublisher(sink Sink) *Publisher {
	return &Publisher{sink: sink, newID: uuid.NewString}
}

// Publish sends e keyed by its generated event ID and returns that ID.
func (p *Publisher) Publish(ctx context.Context, e Event) (string, error) {
	env, err := NewEnvelope(p.newID(), e)
	if err != nil {
		return "", err
	}
	if err := p.sink.Publish(ctx, env.EventID, env); err != nil {
		return "", err
	}
	return env.EventID, nil
}
