package store

import (
	"context"
	"time"

	"github.com/MauricioMilano/kwan-challenge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts together with their 1:1 credential
// records.
type UserRepository interface {
	// CreateUser inserts the user and its Auth credential in one
	// transaction and returns the persisted user with server-assigned
	// fields. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User, auth models.Auth) (models.User, error)

	// FindUserByEmail returns the user with the given email, with the Auth
	// credential and Role preloaded. Returns ErrNoUserWasFound when no row
	// matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RoleRepository looks up shared role records.
type RoleRepository interface {
	// FindRoleByName returns the role with the given unique name.
	// Returns ErrNoRoleWasFound when no row matches.
	FindRoleByName(ctx context.Context, name string) (models.Role, error)
}

// TaskRepository persists tasks and serves the paginated listings.
type TaskRepository interface {
	// CreateTask inserts the task and returns it with server-assigned fields.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// FindTasksByOwner returns the owner's tasks ordered by ascending id,
	// windowed by limit/offset. An empty page is not an error.
	FindTasksByOwner(ctx context.Context, ownerID int64, limit, offset uint64) ([]models.Task, error)

	// FindAllTasks returns every task regardless of owner, ordered by
	// ascending id and windowed by limit/offset, with owner details embedded.
	FindAllTasks(ctx context.Context, limit, offset uint64) ([]models.Task, error)

	// FindTaskByID returns the task with the given id, optionally scoped to
	// an owner (ownerID > 0). Returns ErrTaskNotFound when no row matches.
	FindTaskByID(ctx context.Context, taskID, ownerID int64) (models.Task, error)

	// MarkPerformed sets the task's date_performed and returns the updated
	// row. Returns ErrTaskNotFound when no row matches.
	MarkPerformed(ctx context.Context, taskID int64, performedAt time.Time) (models.Task, error)

	// DeleteTask removes the task by id. Returns ErrTaskNotFound when no
	// row was deleted.
	DeleteTask(ctx context.Context, taskID int64) error
}
