// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, permission gating, logging and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
