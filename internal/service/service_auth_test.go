package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MauricioMilano/kwan-challenge/internal/config"
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/mock"
	"github.com/MauricioMilano/kwan-challenge/internal/store"
	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAppConfig() config.App {
	return config.App{
		PasswordHashKey: "hash-secret",
		TokenSignKey:    "sign-secret",
		TokenIssuer:     "task-api",
		TokenDuration:   time.Hour,
	}
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockRoleRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	roles := mock.NewMockRoleRepository(ctrl)
	svc := NewAuthService(users, roles, testAppConfig(), logger.Nop())
	return svc, users, roles
}

func technicianRole() models.Role {
	return models.Role{
		RoleID:      1,
		Name:        "Technician",
		Permissions: "create_task;read_task;read_my_tasks;update_task",
	}
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:    "john@example.com",
		Password: "secret",
		Username: "John",
		Role:     "Technician",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, users, roles := newTestAuthService(t)
	ctx := context.Background()
	req := validRegisterRequest()
	role := technicianRole()

	users.EXPECT().
		FindUserByEmail(ctx, req.Email).
		Return(models.User{}, store.ErrNoUserWasFound)
	roles.EXPECT().
		FindRoleByName(ctx, req.Role).
		Return(role, nil)
	users.EXPECT().
		CreateUser(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User, auth models.Auth) (models.User, error) {
			assert.Equal(t, req.Username, user.Name)
			assert.Equal(t, req.Email, user.Email)
			assert.Equal(t, role.RoleID, user.RoleID)
			assert.NotEmpty(t, auth.Salt)
			// digest must verify against the request password
			assert.True(t, utils.VerifyPassword(auth.PasswordHash, auth.Salt, req.Password, "hash-secret"))
			user.UserID = 7
			return user, nil
		})

	registered, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)
	require.NotNil(t, registered.Role)
	assert.Equal(t, "Technician", registered.Role.Name)
	assert.Nil(t, registered.Auth, "credentials must never leave the service")
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
	}{
		{"empty email", func(r *models.RegisterRequest) { r.Email = "" }},
		{"empty password", func(r *models.RegisterRequest) { r.Password = "" }},
		{"empty username", func(r *models.RegisterRequest) { r.Username = "" }},
		{"empty role", func(r *models.RegisterRequest) { r.Role = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			_, err := svc.Register(ctx, req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()
	req := validRegisterRequest()

	users.EXPECT().
		FindUserByEmail(ctx, req.Email).
		Return(models.User{UserID: 1, Email: req.Email}, nil)

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_EmailTakenByRace(t *testing.T) {
	svc, users, roles := newTestAuthService(t)
	ctx := context.Background()
	req := validRegisterRequest()

	users.EXPECT().
		FindUserByEmail(ctx, req.Email).
		Return(models.User{}, store.ErrNoUserWasFound)
	roles.EXPECT().
		FindRoleByName(ctx, req.Role).
		Return(technicianRole(), nil)
	users.EXPECT().
		CreateUser(ctx, gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_UnknownRole(t *testing.T) {
	svc, users, roles := newTestAuthService(t)
	ctx := context.Background()
	req := validRegisterRequest()
	req.Role = "Ghost"

	users.EXPECT().
		FindUserByEmail(ctx, req.Email).
		Return(models.User{}, store.ErrNoUserWasFound)
	roles.EXPECT().
		FindRoleByName(ctx, "Ghost").
		Return(models.Role{}, store.ErrNoRoleWasFound)

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestRegister_StorageError(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()
	req := validRegisterRequest()

	users.EXPECT().
		FindUserByEmail(ctx, req.Email).
		Return(models.User{}, errors.New("db failure"))

	_, err := svc.Register(ctx, req)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()

	salt, err := utils.RandomSalt()
	require.NoError(t, err)

	role := technicianRole()
	return models.User{
		UserID: 7,
		Name:   "John",
		Email:  "john@example.com",
		RoleID: role.RoleID,
		Role:   &role,
		Auth: &models.Auth{
			AuthID:       3,
			UserID:       7,
			PasswordHash: utils.HashPassword(salt, password, "hash-secret"),
			Salt:         salt,
		},
	}
}

func TestLogin_Success(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()
	user := storedUser(t, "secret")

	users.EXPECT().
		FindUserByEmail(ctx, user.Email).
		Return(user, nil)

	authenticated, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.UserID, authenticated.UserID)
	assert.Nil(t, authenticated.Auth, "credentials must never leave the service")
	require.NotNil(t, authenticated.Role)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.LoginRequest{Email: "", Password: "secret"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: ""})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()
	user := storedUser(t, "secret")

	users.EXPECT().
		FindUserByEmail(ctx, user.Email).
		Return(user, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "not-the-secret"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestCreateToken_RoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()
	user := storedUser(t, "secret")

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.UserID)
	assert.Equal(t, user.Name, parsed.Claims.Name)
	assert.Equal(t, user.Role.Name, parsed.Claims.Role.Name)
}

func TestParseToken_InvalidIsOpaque(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		tokenString string
	}{
		{"empty", ""},
		{"malformed", "not-a-token"},
		{"garbage segments", "aaa.bbb.ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.tokenString)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.EqualError(t, err, "invalid token", "cause must not leak")
		})
	}
}

func TestParseToken_WrongKey(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()
	user := storedUser(t, "secret")

	foreign, err := utils.GenerateJWTToken("task-api", user, time.Hour, "other-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
