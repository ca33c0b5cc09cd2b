package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/gonorth-export/internal/messaging"
)

// NatsConfig configures the embedded broker serving render requests. Port 0
// uses the NATS default port, -1 a free one.
type NatsConfig struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
}

func (n *NatsConfig) validate() error {
	el := errors.NewErrorList()
	if _, err := n.options(); err != nil {
		el.Add(err)
	}
	if n.Port < -1 || n.Port > 65535 {
		el.Add(fmt.Errorf("nats port %d out of range", n.Port))
	}
	return el.Err()
}

// options translates the set fields into server options.
func (n *NatsConfig) options() ([]messaging.NatsServerOpt, error) {
	var opts []messaging.NatsServerOpt
	if n.StartTimeout != "" {
		d, err := time.ParseDuration(n.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, messaging.WithStartTimeout(d))
	}
	if n.Host != "" {
		opts = append(opts, messaging.WithHost(n.Host))
	}
	if n.Port != 0 {
		opts = append(opts, messaging.WithPort(n.Port))
	}
	return opts, nil
}

func (n *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	opts, err := n.options()
	if err != nil {
		return nil, err
	}
	return messaging.NewNatsServer(opts...)
}
