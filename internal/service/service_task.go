package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/queue"
	"github.com/MauricioMilano/kwan-challenge/internal/store"
	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// taskService is the concrete implementation of TaskService. It composes the
// task repository with the queue notifier for the perform transition.
type taskService struct {
	taskRepository store.TaskRepository
	queue          queue.Queue
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given repository and
// queue notifier.
func NewTaskService(taskRepository store.TaskRepository, q queue.Queue, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		queue:          q,
		logger:         logger,
	}
}

// Create persists a new task owned by ownerID.
//
// Returns ErrMissingFields if name or summary is empty.
func (t *taskService) Create(ctx context.Context, ownerID int64, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Summary == "" {
		log.Error().Int64("owner_id", ownerID).Msg("invalid task data provided")
		return models.Task{}, ErrMissingFields
	}

	task := models.Task{
		Name:    req.Name,
		Summary: req.Summary,
		UserID:  ownerID,
	}

	createdTask, err := t.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// ListMine returns ownerID's tasks for the given page. Page and limit fall
// back to 1 and 10 when not positive.
func (t *taskService) ListMine(ctx context.Context, ownerID int64, page, limit int) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	pageSize, offset := pagination(page, limit)

	tasks, err := t.taskRepository.FindTasksByOwner(ctx, ownerID, pageSize, offset)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// ListAll returns every task with owner details for the given page.
func (t *taskService) ListAll(ctx context.Context, page, limit int) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	pageSize, offset := pagination(page, limit)

	tasks, err := t.taskRepository.FindAllTasks(ctx, pageSize, offset)
	if err != nil {
		log.Err(err).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// Perform marks the performer's task as performed.
//
// The lookup is scoped to the performer, so another user's task reads as
// absent. The performed timestamp is set at most once; a second attempt
// returns ErrTaskAlreadyPerformed with the task unchanged.
//
// On success a human-readable notification is published to the queue. The
// send is best-effort: a failure is logged and deliberately discarded, never
// failing the perform itself.
func (t *taskService) Perform(ctx context.Context, taskID int64, performer utils.AuthContext) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := t.taskRepository.FindTaskByID(ctx, taskID, performer.UserID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Int64("task_id", taskID).Msg("task lookup ended with error")
		return models.Task{}, fmt.Errorf("task lookup ended with error: %w", err)
	}

	if task.Performed() {
		return models.Task{}, ErrTaskAlreadyPerformed
	}

	performedTask, err := t.taskRepository.MarkPerformed(ctx, taskID, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Int64("task_id", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	message := fmt.Sprintf("The tech %s performed the task %s on date %s",
		performer.Name, performedTask.Name, performedTask.DatePerformed.Format(time.RFC3339))
	if err := t.queue.Send(ctx, message); err != nil {
		// best-effort notification, the perform already succeeded
		log.Err(err).Int64("task_id", taskID).Msg("queue notification failed")
	}

	return performedTask, nil
}

// Delete removes a task by id and returns its prior representation. The
// lookup is not owner-scoped; any caller holding delete_task may remove any
// task.
func (t *taskService) Delete(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := t.taskRepository.FindTaskByID(ctx, taskID, 0)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Int64("task_id", taskID).Msg("task lookup ended with error")
		return models.Task{}, fmt.Errorf("task lookup ended with error: %w", err)
	}

	if err := t.taskRepository.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Int64("task_id", taskID).Msg("task deletion ended with error")
		return models.Task{}, fmt.Errorf("task deletion ended with error: %w", err)
	}

	return task, nil
}

// pagination converts 1-based page/limit query values into LIMIT/OFFSET.
func pagination(page, limit int) (pageSize, offset uint64) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return uint64(limit), uint64((page - 1) * limit)
}
