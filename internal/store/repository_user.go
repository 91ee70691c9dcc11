package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and credential lookup against the "users",
// "auths" and "roles" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user account and its credential record in a
// single transaction and returns the fully populated [models.User] with
// server-assigned fields (UserID, CreatedAt).
//
// The two INSERTs use RETURNING clauses, so the caller receives the canonical
// database representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Transaction begin/commit failure → corresponding sentinel error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, auth models.Auth) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, errors.Join(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// insert user account
	row := tx.QueryRowContext(ctx, createUser, user.Name, user.Email, user.RoleID)
	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.RoleID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// insert credential record bound to the new user
	row = tx.QueryRowContext(ctx, createAuth, user.UserID, auth.PasswordHash, auth.Salt)
	if err := row.Scan(&auth.AuthID, &auth.UserID, &auth.PasswordHash, &auth.Salt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting auth")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot commit transaction")
		return models.User{}, errors.Join(ErrCommittingTransaction, err)
	}

	user.Auth = &auth

	return user, nil
}

// FindUserByEmail retrieves the user whose email matches, with the Auth
// credential and Role joined in.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		foundUser models.User
		auth      models.Auth
		role      models.Role
	)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(
		&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.RoleID, &foundUser.CreatedAt,
		&auth.AuthID, &auth.PasswordHash, &auth.Salt,
		&role.Name, &role.Permissions,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	auth.UserID = foundUser.UserID
	role.RoleID = foundUser.RoleID
	foundUser.Auth = &auth
	foundUser.Role = &role

	return foundUser, nil
}
