package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/models"
)

// roleRepository is the PostgreSQL-backed implementation of [RoleRepository].
// Roles are seeded by migration and read-only at runtime.
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// FindRoleByName retrieves the role with the given unique name.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoRoleWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *roleRepository) FindRoleByName(ctx context.Context, name string) (models.Role, error) {
	log := logger.FromContext(ctx)

	var role models.Role
	row := r.db.QueryRowContext(ctx, findRoleByName, name)

	if err := row.Scan(&role.RoleID, &role.Name, &role.Permissions); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrNoRoleWasFound
		}
		log.Err(err).Str("func", "*roleRepository.FindRoleByName").Msg("error: scanning role")
		return models.Role{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return role, nil
}
