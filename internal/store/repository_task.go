package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// It handles task creation, paginated listings, the perform update and
// deletion against the "tasks" table.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns the fully populated
// [models.Task] with server-assigned fields (TaskID, CreatedAt).
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.Name, task.Summary, task.UserID)

	if err := row.Scan(&task.TaskID, &task.Name, &task.Summary, &task.DatePerformed, &task.UserID, &task.CreatedAt); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: inserting task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// FindTasksByOwner returns the owner's tasks ordered by ascending id,
// windowed by limit/offset. An empty page yields an empty slice, not an
// error.
func (r *taskRepository) FindTasksByOwner(ctx context.Context, ownerID int64, limit, offset uint64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTasksByOwnerQuery(ownerID, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByOwner").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByOwner").Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, limit)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.TaskID, &task.Name, &task.Summary, &task.DatePerformed, &task.UserID, &task.CreatedAt); err != nil {
			log.Err(err).Str("func", "*taskRepository.FindTasksByOwner").Msg("error: scanning task")
			return nil, errors.Join(ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return tasks, nil
}

// FindAllTasks returns every task regardless of owner, ordered by ascending
// id and windowed by limit/offset, with owner name and email embedded.
func (r *taskRepository) FindAllTasks(ctx context.Context, limit, offset uint64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAllTasksQuery(limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindAllTasks").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindAllTasks").Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, limit)
	for rows.Next() {
		var (
			task  models.Task
			owner models.User
		)
		if err := rows.Scan(
			&task.TaskID, &task.Name, &task.Summary, &task.DatePerformed, &task.UserID, &task.CreatedAt,
			&owner.Name, &owner.Email,
		); err != nil {
			log.Err(err).Str("func", "*taskRepository.FindAllTasks").Msg("error: scanning task")
			return nil, errors.Join(ErrScanningRows, err)
		}
		owner.UserID = task.UserID
		task.Owner = &owner
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return tasks, nil
}

// FindTaskByID retrieves a task by id. When ownerID is positive the lookup is
// additionally scoped to that owner, so another user's task reads as absent.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTaskNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *taskRepository) FindTaskByID(ctx context.Context, taskID, ownerID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	var row *sql.Row
	if ownerID > 0 {
		row = r.db.QueryRowContext(ctx, findTaskByIDAndOwner, taskID, ownerID)
	} else {
		row = r.db.QueryRowContext(ctx, findTaskByID, taskID)
	}

	var task models.Task
	if err := row.Scan(&task.TaskID, &task.Name, &task.Summary, &task.DatePerformed, &task.UserID, &task.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("error: scanning task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// MarkPerformed stamps the task's date_performed and returns the updated row.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTaskNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *taskRepository) MarkPerformed(ctx context.Context, taskID int64, performedAt time.Time) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, markTaskPerformed, taskID, performedAt)

	var task models.Task
	if err := row.Scan(&task.TaskID, &task.Name, &task.Summary, &task.DatePerformed, &task.UserID, &task.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.MarkPerformed").Msg("error: updating task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// DeleteTask removes the task by id. Deleting an absent task yields
// [ErrTaskNotFound].
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTask, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: deleting task")
		return errors.Join(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
