package service

import (
	"context"

	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
)

// AuthService covers the account lifecycle: registration, credential
// verification and the JWT round trip.
type AuthService interface {
	// Register creates a user account with a fresh salt and hashed
	// password. Returns the persisted user with the role attached.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the email/password pair and returns the matching user
	// with the role attached and credentials stripped.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT embedding the user's identity and role.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string. Any validation failure is
	// normalised to ErrInvalidToken.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService covers the task lifecycle behind the access gate. Permission
// checks happen in the handler layer; the service assumes the caller is
// already authorised.
type TaskService interface {
	// Create persists a task owned by the caller.
	Create(ctx context.Context, ownerID int64, req models.CreateTaskRequest) (models.Task, error)

	// ListMine returns the caller's tasks for the given page (1-based) and
	// page size.
	ListMine(ctx context.Context, ownerID int64, page, limit int) ([]models.Task, error)

	// ListAll returns every task with owner details, same pagination.
	ListAll(ctx context.Context, page, limit int) ([]models.Task, error)

	// Perform marks the caller's task as performed and notifies the queue.
	// The notification is best-effort; its failure never surfaces.
	Perform(ctx context.Context, taskID int64, performer utils.AuthContext) (models.Task, error)

	// Delete removes a task by id, regardless of owner, and returns its
	// prior representation.
	Delete(ctx context.Context, taskID int64) (models.Task, error)
}
