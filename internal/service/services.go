package service

import (
	"github.com/MauricioMilano/kwan-challenge/internal/config"
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/queue"
	"github.com/MauricioMilano/kwan-challenge/internal/store"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(storages *store.Storages, q queue.Queue, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, storages.RoleRepository, cfg.App, logger),
		TaskService: NewTaskService(storages.TaskRepository, q, logger),
	}
}
