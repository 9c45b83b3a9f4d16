package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"zerowaste/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements EventPublisher on a durable RabbitMQ queue.
// The channel is reopened lazily after the broker drops it.
type rabbitMQPublisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitMQPublisher dials the broker and declares the booking events queue
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	p := &rabbitMQPublisher{
		url:    url,
		queue:  queue,
		logger: logger,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connectLocked(); err != nil {
		return nil, err
	}

	return p, nil
}

// DeclareBookingQueue declares the durable booking events queue; publishing and consuming share it
func DeclareBookingQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)

	return errors.Wrapf(err, "declare queue %s", queue)
}

func (p *rabbitMQPublisher) connectLocked() error {
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return errors.Wrap(err, "rabbitmq dial failed")
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return errors.Wrap(err, "rabbitmq channel open failed")
	}
	if err := DeclareBookingQueue(ch, p.queue); err != nil {
		_ = ch.Close()

		return err
	}
	p.ch = ch

	return nil
}

// PublishBookingEvent publishes a persistent message routed to the booking queue
func (p *rabbitMQPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Type:          event.Type,
		Headers:       headers,
		Body:          body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		if err := p.connectLocked(); err != nil {
			return err
		}
	}

	// Default exchange, routing key = queue name
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errors.Wrap(err, "rabbitmq publish failed")
	}

	p.logger.InfoContext(ctx, "[RabbitMQ] Event published",
		slog.String("queue", p.queue),
		slog.String("event_type", event.Type),
		slog.String("booking_id", event.BookingID),
	)

	return nil
}

// Close closes the channel and the connection
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
