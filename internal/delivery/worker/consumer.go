package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"zerowaste/config"
	"zerowaste/internal/delivery"
	deliverycontext "zerowaste/internal/delivery/context"
	"zerowaste/internal/delivery/worker/handler"
	"zerowaste/internal/domain/constants"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/infra/pubsub"
	"zerowaste/internal/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerPrefetch   = 20
	consumerMinBackoff = time.Second
	consumerMaxBackoff = 30 * time.Second
)

var errDeliveriesClosed = errors.New("deliveries channel closed")

// rabbitMQConsumer pulls booking events from the durable RabbitMQ queue.
// It reconnects with exponential backoff until stopped.
type rabbitMQConsumer struct {
	enabled        bool
	url            string
	queue          string
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase

	stopCh   chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
	conn     *amqp.Connection
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewConsumer creates the RabbitMQ consumer. It idles when the rabbitmq provider is not configured.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	c := &rabbitMQConsumer{
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		stopCh:         make(chan struct{}),
	}

	if cfg := params.Cfg.PubSub; cfg != nil && cfg.Provider == constants.PubSubProviderRabbitMQ {
		if cfg.RabbitMQ.URL == "" {
			return nil, errors.New("rabbitmq url is required for the rabbitmq consumer")
		}
		c.enabled = true
		c.url = cfg.RabbitMQ.URL
		c.queue = cfg.RabbitMQ.Queue
		if c.queue == "" {
			c.queue = constants.DefaultBookingQueue
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve consumes until the consumer is stopped
func (c *rabbitMQConsumer) Serve(ctx context.Context) error {
	if !c.enabled {
		c.logger.Info("RabbitMQ consumer disabled, booking events arrive by push")

		return nil
	}

	c.logger.Info("Starting RabbitMQ consumer", slog.String("queue", c.queue))

	backoff := consumerMinBackoff
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("[Worker] Failed to dial broker",
				slog.Any("error", err),
				slog.Duration("retry_in", backoff),
			)
			if !c.wait(backoff) {
				return nil
			}
			backoff = min(backoff*2, consumerMaxBackoff)

			continue
		}
		backoff = consumerMinBackoff

		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()

		err = c.consume(ctx, conn)
		_ = conn.Close()

		select {
		case <-c.stopCh:
			return nil
		default:
		}

		c.logger.Warn("[Worker] Consume loop ended, reconnecting", slog.Any("error", err))
		if !c.wait(consumerMinBackoff) {
			return nil
		}
	}
}

func (c *rabbitMQConsumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "channel open")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		return errors.Wrap(err, "set qos")
	}

	if err := pubsub.DeclareBookingQueue(ch, c.queue); err != nil {
		return err
	}

	msgs, err := ch.Consume(
		c.queue, // queue
		"",      // consumer
		false,   // autoAck
		false,   // exclusive
		false,   // noLocal
		false,   // noWait
		nil,     // args
	)
	if err != nil {
		return errors.Wrap(err, "queue consume")
	}

	for d := range msgs {
		c.handleDelivery(ctx, d)
	}

	return errDeliveriesClosed
}

// handleDelivery acknowledges a message unless its failure is retryable, in which case it is requeued.
func (c *rabbitMQConsumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var event service.BookingEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.Error("[Worker] Failed to parse booking event",
			slog.String("message_id", d.MessageId),
			slog.Any("error", err),
		)
		_ = d.Nack(false, false)

		return
	}

	attributes := make(map[string]string, len(d.Headers)+1)
	for k, v := range d.Headers {
		if s, ok := v.(string); ok {
			attributes[k] = s
		}
	}
	if _, ok := attributes[constants.AttrRequestID]; !ok && d.CorrelationId != "" {
		attributes[constants.AttrRequestID] = d.CorrelationId
	}

	requestID := handler.ExtractRequestID(ctx, attributes, &event)
	msgCtx := deliverycontext.WithRequestID(ctx, requestID)
	msgCtx = deliverycontext.WithLogger(msgCtx, c.logger.With(slog.String(constants.AttrRequestID, requestID)))

	if err := handler.ProcessEvent(msgCtx, c.notificationUC, &event); err != nil && usecase.IsRetryable(err) {
		_ = d.Nack(false, true)

		return
	}

	_ = d.Ack(false)
}

// wait sleeps for d, returning false if the consumer was stopped meanwhile.
func (c *rabbitMQConsumer) wait(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-c.stopCh:
		return false
	case <-timer.C:
		return true
	}
}

func (c *rabbitMQConsumer) stop(_ context.Context) error {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil && !c.conn.IsClosed() {
		c.logger.Info("Shutting down RabbitMQ consumer")

		return errors.WithStack(c.conn.Close())
	}

	return nil
}
