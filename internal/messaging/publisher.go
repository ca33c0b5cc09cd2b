package messaging

import (
	"encoding/json"
	"fmt"
)

// Publisher sends JSON encoded events.
type Publisher interface {
	PublishJSON(subject string, v any) error
}

// NatsPublisher publishes JSON events through the embedded server.
type NatsPublisher struct {
	server *NatsServer
}

// NewNatsPublisher wraps a NatsServer for event delivery.
func NewNatsPublisher(server *NatsServer) *NatsPublisher {
	return &NatsPublisher{server: server}
}

func (p *NatsPublisher) PublishJSON(subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding event for %s: %w", subject, err)
	}
	return p.server.Publish(subject, data)
}
