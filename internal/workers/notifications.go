package workers

import (
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/streadway/amqp"
)

// Consumer is the part of the queue collaborator the notification worker
// needs: a stream of deliveries from the durable notification queue.
type Consumer interface {
	Consume() (<-chan amqp.Delivery, error)
}

// NotificationWorker drains the task notification queue and logs every
// message. It blocks in Run until the delivery channel closes, which happens
// when the queue connection shuts down.
type NotificationWorker struct {
	consumer Consumer
	logger   *logger.Logger
}

// NewNotificationWorker constructs a NotificationWorker reading from the
// given consumer.
func NewNotificationWorker(consumer Consumer, logger *logger.Logger) *NotificationWorker {
	return &NotificationWorker{
		consumer: consumer,
		logger:   logger,
	}
}

// Run consumes deliveries until the channel closes. A consume setup failure
// is logged and ends the worker.
func (w *NotificationWorker) Run() {
	msgs, err := w.consumer.Consume()
	if err != nil {
		w.logger.Err(err).Msg("error starting notification consumer")
		return
	}

	w.logger.Info().Msg("waiting for notification messages")
	for d := range msgs {
		w.logger.Info().Str("message", string(d.Body)).Msg("received a message")
	}
	w.logger.Info().Msg("notification stream closed")
}
