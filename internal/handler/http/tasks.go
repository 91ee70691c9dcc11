package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/service"
	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
	"github.com/go-chi/chi/v5"
)

// createTask handles POST /tasks. Requires create_task.
func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	if !allowed(w, models.PermissionCreateTask, caller.Permissions) {
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, msgMissingBodyProperties, http.StatusUnprocessableEntity)
		return
	}

	task, err := h.services.TaskService.Create(ctx, caller.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			log.Err(err).Msg("missing body properties")
			utils.WriteMessage(w, msgMissingBodyProperties, http.StatusUnprocessableEntity)
			return
		}
		log.Err(err).Msg("unexpected error occurred during task creation")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// listTasks handles GET /tasks (and GET /tasks/{task_id}, which the API
// treats as the same paginated listing). Requires read_my_tasks; only the
// caller's own tasks are returned.
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	if !allowed(w, models.PermissionReadMyTasks, caller.Permissions) {
		return
	}

	page, limit := paginationParams(r)

	tasks, err := h.services.TaskService.ListMine(ctx, caller.UserID, page, limit)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during task listing")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

// listAllTasks handles GET /tasks/all. Requires read_all_tasks; every task is
// returned with owner details embedded.
func (h *Handler) listAllTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	if !allowed(w, models.PermissionReadAllTasks, caller.Permissions) {
		return
	}

	page, limit := paginationParams(r)

	tasks, err := h.services.TaskService.ListAll(ctx, page, limit)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during task listing")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

// performTask handles PATCH /tasks/{task_id}. Requires update_task. The
// lookup is scoped to the caller, the transition is monotonic, and the queue
// notification never influences the response.
func (h *Handler) performTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	if !allowed(w, models.PermissionUpdateTask, caller.Permissions) {
		return
	}

	taskID, err := taskIDParam(r)
	if err != nil {
		log.Err(err).Msg("invalid task id")
		utils.WriteMessage(w, msgTaskNotFound, http.StatusNotFound)
		return
	}

	task, err := h.services.TaskService.Perform(ctx, taskID, caller)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			utils.WriteMessage(w, msgTaskNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrTaskAlreadyPerformed):
			utils.WriteMessage(w, msgTaskAlreadyPerformed, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task perform")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// deleteTask handles DELETE /tasks/{task_id}. Requires delete_task. The
// lookup is by id only, not scoped to the caller: any caller holding the
// permission may delete any task.
func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	if !allowed(w, models.PermissionDeleteTask, caller.Permissions) {
		return
	}

	taskID, err := taskIDParam(r)
	if err != nil {
		log.Err(err).Msg("invalid task id")
		utils.WriteMessage(w, msgTaskNotFound, http.StatusNotFound)
		return
	}

	task, err := h.services.TaskService.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			utils.WriteMessage(w, msgTaskNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during task deletion")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// paginationParams reads the page/limit query parameters. Absent or
// unparseable values fall back to page 1 and limit 10; the service clamps
// non-positive values the same way.
func paginationParams(r *http.Request) (page, limit int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	return page, limit
}

// taskIDParam parses the {task_id} route parameter as a base-10 int64.
func taskIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)
}
