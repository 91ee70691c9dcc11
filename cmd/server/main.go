package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MauricioMilano/kwan-challenge/internal/config"
	httphandler "github.com/MauricioMilano/kwan-challenge/internal/handler/http"
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/queue"
	"github.com/MauricioMilano/kwan-challenge/internal/server"
	"github.com/MauricioMilano/kwan-challenge/internal/service"
	"github.com/MauricioMilano/kwan-challenge/internal/store"
	"github.com/MauricioMilano/kwan-challenge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("task-api-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to notification queue")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, rabbitMQ, *cfg, log)

	seedDefaultUsers(ctx, services.AuthService, log)

	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log,
		func() {
			if err := rabbitMQ.Close(); err != nil {
				log.Err(err).Msg("error closing notification queue")
			}
		},
		func() {
			if err := db.Close(); err != nil {
				log.Err(err).Msg("error closing database connection")
			}
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// seedDefaultUsers provisions the out-of-the-box manager and technician
// accounts so a fresh deployment is usable immediately. Registration is
// idempotent: an already existing email is skipped, any other failure is
// fatal because the API is unusable without working registration.
func seedDefaultUsers(ctx context.Context, auth service.AuthService, log *logger.Logger) {
	defaults := []models.RegisterRequest{
		{Username: "manager", Email: "manager@mail.com", Password: "mana123", Role: "Manager"},
		{Username: "technician", Email: "technician@mail.com", Password: "tech123", Role: "Technician"},
	}

	for _, req := range defaults {
		user, err := auth.Register(ctx, req)
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			log.Debug().Str("email", req.Email).Msg("default user already provisioned")
		case err != nil:
			log.Fatal().Err(err).Str("email", req.Email).Msg("error seeding default user")
		default:
			log.Info().
				Int64("id", user.UserID).
				Str("email", user.Email).
				Str("role", req.Role).
				Msg("default user created")
		}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
