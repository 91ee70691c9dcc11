package store

import (
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (name, email, role_id)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, role_id, created_at;`

	createAuth = `INSERT INTO auths (user_id, password_hash, salt)
    VALUES ($1, $2, $3)
    RETURNING auth_id, user_id, password_hash, salt;`

	findUserByEmail = `SELECT u.user_id, u.name, u.email, u.role_id, u.created_at,
       a.auth_id, a.password_hash, a.salt,
       r.name, r.permissions
    FROM users u
    JOIN auths a ON a.user_id = u.user_id
    JOIN roles r ON r.role_id = u.role_id
    WHERE u.email = $1;`

	findRoleByName = `SELECT role_id, name, permissions
    FROM roles
    WHERE name = $1;`

	createTask = `INSERT INTO tasks (name, summary, user_id)
    VALUES ($1, $2, $3)
    RETURNING task_id, name, summary, date_performed, user_id, created_at;`

	findTaskByID = `SELECT task_id, name, summary, date_performed, user_id, created_at
    FROM tasks
    WHERE task_id = $1;`

	findTaskByIDAndOwner = `SELECT task_id, name, summary, date_performed, user_id, created_at
    FROM tasks
    WHERE task_id = $1 AND user_id = $2;`

	markTaskPerformed = `UPDATE tasks
    SET date_performed = $2
    WHERE task_id = $1
    RETURNING task_id, name, summary, date_performed, user_id, created_at;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1;`
)

// psql is the shared squirrel builder configured for PostgreSQL's $N
// placeholders. The paginated listings are built with squirrel because the
// result window varies per request.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildTasksByOwnerQuery builds the paginated listing of one owner's tasks,
// ordered by ascending id so pages are stable between requests.
func buildTasksByOwnerQuery(ownerID int64, limit, offset uint64) (string, []any, error) {
	return psql.
		Select("task_id", "name", "summary", "date_performed", "user_id", "created_at").
		From("tasks").
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("task_id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// buildAllTasksQuery builds the paginated listing of every task with owner
// details joined in, ordered by ascending id.
func buildAllTasksQuery(limit, offset uint64) (string, []any, error) {
	return psql.
		Select(
			"t.task_id", "t.name", "t.summary", "t.date_performed", "t.user_id", "t.created_at",
			"u.name", "u.email",
		).
		From("tasks t").
		Join("users u ON u.user_id = t.user_id").
		OrderBy("t.task_id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
}
