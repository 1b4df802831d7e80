package queue

import (
	"github.com/go-kit/log"
	"github.com/lethe-etl/lethe/pkg/queue/message"
	"github.com/lethe-etl/lethe/pkg/queue/nats"
	"github.com/lethe-etl/lethe/pkg/queue/webhook"
	"github.com/pkg/errors"
)

type Config struct {
	Type string `yaml:"type"`

	Nats    nats.Config    `yaml:"nats"`
	Webhook webhook.Config `yaml:"webhook"`
}

// Publisher announces completed runs. An empty queue type disables
// notifications.
type Publisher interface {
	Pub(channel string, msg *message.Message) error
}

type client interface {
	Publish(channel string, msg string) error
}

type publisher struct {
	client client
}

func (p *publisher) Pub(channel string, msg *message.Message) error {
	return p.client.Publish(channel, msg.String())
}

func NewPublisher(cfg Config, log log.Logger) (Publisher, error) {
	switch cfg.Type {
	case "nats":
		c, err := nats.NewNatsClient(cfg.Nats, log)
		if err != nil {
			return nil, err
		}
		return &publisher{client: c}, nil
	case "webhook":
		return &publisher{client: webhook.NewWebhookClient(cfg.Webhook, log)}, nil
	case "":
		return nil, nil
	default:
		return nil, errors.New("invalid queue type")
	}
}
