package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// dialTimeout bounds the TCP connect and AMQP handshake when ctx carries no
// deadline of its own.
const dialTimeout = 3 * time.Second

// Publisher sends ledger events to LedgerQueue. Each publish dials its own
// connection; write volume is a handful of events per minute.
type Publisher struct {
	url string
	log *logrus.Logger
}

// NewPublisher returns nil when url is empty; a nil *Publisher drops events.
func NewPublisher(url string, log *logrus.Logger) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url, log: log}
}

// Publish sends ev as a persistent JSON message. Errors are logged and
// returned so the caller may ignore them.
func (p *Publisher) Publish(ctx context.Context, ev LedgerEvent) error {
	if p == nil {
		return nil
	}
	conn, err := p.dial(ctx)
	if err != nil {
		p.warn(ev, "dial failed", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.warn(ev, "channel open failed", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(LedgerQueue, true, false, false, false, nil); err != nil {
		p.warn(ev, "queue declare failed", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.warn(ev, "marshal failed", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID,
		Type:         ev.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", LedgerQueue, false, false, pub); err != nil {
		p.warn(ev, "publish failed", err)
		return err
	}
	return nil
}

// dial connects within ctx's deadline. The handshake deadline set by
// amqp.DefaultDial also covers a broker that accepts but never answers.
func (p *Publisher) dial(ctx context.Context) (*amqp.Connection, error) {
	timeout := dialTimeout
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return amqp.DialConfig(p.url, amqp.Config{
		Dial:      amqp.DefaultDial(timeout),
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
}

func (p *Publisher) warn(ev LedgerEvent, msg string, err error) {
	if p.log == nil {
		return
	}
	p.log.WithFields(logrus.Fields{
		"module":    "queue",
		"event":     ev.Type,
		"entity_id": ev.EntityID,
		"error":     err.Error(),
	}).Warn("rabbitmq: " + msg)
}
