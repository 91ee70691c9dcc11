package store

import "github.com/MauricioMilano/kwan-challenge/internal/logger"

// Storages bundles every repository behind one value so the service layer
// takes a single dependency.
type Storages struct {
	UserRepository UserRepository
	RoleRepository RoleRepository
	TaskRepository TaskRepository
}

// NewStorages wires all repositories onto the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		RoleRepository: NewRoleRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
