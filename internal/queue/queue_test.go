package queue

import (
	"errors"
	"testing"

	"github.com/MauricioMilano/kwan-challenge/internal/config"
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewRabbitMQ_BadAddress(t *testing.T) {
	cfg := config.Queue{
		User:      "admin",
		Password:  "admin",
		Host:      "127.0.0.1",
		Port:      "1", // nothing listens here
		QueueName: "default",
	}

	_, err := NewRabbitMQ(cfg, logger.Nop())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrQueueUnavailable))
}
