package main

import (
	"github.com/MauricioMilano/kwan-challenge/internal/config"
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/queue"
	"github.com/MauricioMilano/kwan-challenge/internal/workers"
)

func main() {
	log := logger.NewLogger("task-api-worker")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to notification queue")
	}
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			log.Err(err).Msg("error closing notification queue")
		}
	}()

	workers.NewWorkers(
		workers.NewNotificationWorker(rabbitMQ, log),
	).Run()
}
