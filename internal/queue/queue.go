// Package queue contains the RabbitMQ collaborator used for task
// notifications. Publishing is plain-text onto one durable queue; the worker
// binary consumes from the same queue.
package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/MauricioMilano/kwan-challenge/internal/config"
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/streadway/amqp"
)

//go:generate mockgen -source=queue.go -destination=../mock/queue_mock.go -package=mock

// Queue is the notification publisher the task service depends on.
// Implementations must be safe for use from concurrent requests.
type Queue interface {
	// Send publishes one plain-text message. The send is synchronous but
	// callers treat failures as best-effort.
	Send(ctx context.Context, message string) error

	// Close releases the underlying channel and connection.
	Close() error
}

// ErrQueueUnavailable is returned when the broker connection or channel
// cannot be established.
var ErrQueueUnavailable = errors.New("queue is unavailable")

// RabbitMQ holds one shared connection and channel for the process lifetime.
type RabbitMQ struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	logger    *logger.Logger
}

// NewRabbitMQ dials the broker described by cfg, opens a channel and declares
// the durable queue. The declaration is idempotent, so server and worker can
// start in any order.
func NewRabbitMQ(cfg config.Queue, log *logger.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		log.Err(err).Str("func", "NewRabbitMQ").Msg("error dialing broker")
		return nil, errors.Join(ErrQueueUnavailable, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewRabbitMQ").Msg("error opening channel")
		return nil, errors.Join(ErrQueueUnavailable, err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		log.Err(err).Str("func", "NewRabbitMQ").Msg("error declaring queue")
		return nil, errors.Join(ErrQueueUnavailable, err)
	}
	log.Info().Str("func", "NewRabbitMQ").Str("queue", q.Name).Msg("connected to broker")

	return &RabbitMQ{
		conn:      conn,
		channel:   ch,
		queueName: q.Name,
		logger:    log,
	}, nil
}

// Send publishes one plain-text message onto the declared queue.
func (r *RabbitMQ) Send(ctx context.Context, message string) error {
	log := logger.FromContext(ctx)

	err := r.channel.Publish(
		"",          // exchange
		r.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "text/plain",
			Body:        []byte(message),
		},
	)
	if err != nil {
		log.Err(err).Str("func", "*RabbitMQ.Send").Msg("error publishing message")
		return fmt.Errorf("error publishing message: %w", err)
	}

	return nil
}

// Consume starts delivering messages from the declared queue with auto-ack.
func (r *RabbitMQ) Consume() (<-chan amqp.Delivery, error) {
	msgs, err := r.channel.Consume(
		r.queueName, // queue
		"",          // consumer
		true,        // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		r.logger.Err(err).Str("func", "*RabbitMQ.Consume").Msg("error starting consumer")
		return nil, fmt.Errorf("error starting consumer: %w", err)
	}

	return msgs, nil
}

// Close releases the channel and the connection, in that order.
func (r *RabbitMQ) Close() error {
	if err := r.channel.Close(); err != nil {
		r.logger.Err(err).Str("func", "*RabbitMQ.Close").Msg("error closing channel")
		return err
	}

	return r.conn.Close()
}
