package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/service"
	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
	"github.com/go-chi/chi/v5"
)

// Hand-rolled function stubs for the service interfaces, so each test
// configures only the calls it expects. A nil function means the test does
// not expect that call; reaching it fails loudly via the nil dereference.

type stubAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return s.createTokenFn(ctx, user)
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return s.parseTokenFn(ctx, tokenString)
}

type stubTaskService struct {
	createFn   func(ctx context.Context, ownerID int64, req models.CreateTaskRequest) (models.Task, error)
	listMineFn func(ctx context.Context, ownerID int64, page, limit int) ([]models.Task, error)
	listAllFn  func(ctx context.Context, page, limit int) ([]models.Task, error)
	performFn  func(ctx context.Context, taskID int64, performer utils.AuthContext) (models.Task, error)
	deleteFn   func(ctx context.Context, taskID int64) (models.Task, error)
}

func (s *stubTaskService) Create(ctx context.Context, ownerID int64, req models.CreateTaskRequest) (models.Task, error) {
	return s.createFn(ctx, ownerID, req)
}

func (s *stubTaskService) ListMine(ctx context.Context, ownerID int64, page, limit int) ([]models.Task, error) {
	return s.listMineFn(ctx, ownerID, page, limit)
}

func (s *stubTaskService) ListAll(ctx context.Context, page, limit int) ([]models.Task, error) {
	return s.listAllFn(ctx, page, limit)
}

func (s *stubTaskService) Perform(ctx context.Context, taskID int64, performer utils.AuthContext) (models.Task, error) {
	return s.performFn(ctx, taskID, performer)
}

func (s *stubTaskService) Delete(ctx context.Context, taskID int64) (models.Task, error) {
	return s.deleteFn(ctx, taskID)
}

func newTestHandler(auth *stubAuthService, tasks *stubTaskService) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService: auth,
			TaskService: tasks,
		},
		logger: logger.Nop(),
	}
}

// technicianAuthContext mimics what the access gate attaches for a logged-in
// technician.
func technicianAuthContext() utils.AuthContext {
	role := models.Role{
		Name:        "Technician",
		Permissions: "create_task;read_task;read_my_tasks;update_task",
	}
	return utils.AuthContext{
		UserID:      5,
		Name:        "John",
		Email:       "john@example.com",
		Role:        role,
		Permissions: role.PermissionSet(),
	}
}

// managerAuthContext mimics the gate's value for a logged-in manager.
func managerAuthContext() utils.AuthContext {
	role := models.Role{
		Name:        "Manager",
		Permissions: "read_all_tasks;delete_task",
	}
	return utils.AuthContext{
		UserID:      8,
		Name:        "Jane",
		Email:       "jane@example.com",
		Role:        role,
		Permissions: role.PermissionSet(),
	}
}

// doAuthenticated routes req through the task routes with the given auth
// context pre-attached, bypassing the token verification of the gate.
func doAuthenticated(h *Handler, req *http.Request, caller utils.AuthContext) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req = req.WithContext(context.WithValue(req.Context(), utils.AuthCtxKey, caller))

	taskRoutesWithoutGate(h).ServeHTTP(rr, req)
	return rr
}

// taskRoutesWithoutGate mirrors the protected routes of routes.go minus the
// token middleware, so handler tests can inject the auth context themselves.
func taskRoutesWithoutGate(h *Handler) http.Handler {
	router := chi.NewRouter()
	router.Get("/tasks", h.listTasks)
	router.Get("/tasks/all", h.listAllTasks)
	router.Get("/tasks/{task_id}", h.listTasks)
	router.Post("/tasks", h.createTask)
	router.Patch("/tasks/{task_id}", h.performTask)
	router.Delete("/tasks/{task_id}", h.deleteTask)
	return router
}

func bodyContains(t *testing.T, rr *httptest.ResponseRecorder, fragment string) {
	t.Helper()
	if !strings.Contains(rr.Body.String(), fragment) {
		t.Errorf("expected body to contain %q, got %q", fragment, rr.Body.String())
	}
}
