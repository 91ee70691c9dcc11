package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MauricioMilano/kwan-challenge/internal/service"
	"github.com/MauricioMilano/kwan-challenge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRegister(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func doLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func registeredUser() models.User {
	role := models.Role{Name: "Technician", Permissions: "create_task;read_task;read_my_tasks;update_task"}
	return models.User{
		UserID: 7,
		Name:   "John",
		Email:  "john@example.com",
		Role:   &role,
	}
}

func TestRegisterHandler_Success(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "john@example.com", req.Email)
			return registeredUser(), nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
		},
	}
	h := newTestHandler(auth, &stubTaskService{})

	rr := doRegister(h, `{"email":"john@example.com","password":"secret","username":"John","role":"Technician"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	require.NotNil(t, resp.Role)
	assert.Equal(t, "Technician", resp.Role.Name)

	// credential and role-foreign-key fields must never serialize
	assert.NotContains(t, rr.Body.String(), "password_hash")
	assert.NotContains(t, rr.Body.String(), "salt")
	assert.NotContains(t, rr.Body.String(), "role_id")
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrMissingFields
		},
	}
	h := newTestHandler(auth, &stubTaskService{})

	rr := doRegister(h, `{"email":"john@example.com"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	bodyContains(t, rr, "Missing body properties")
}

func TestRegisterHandler_UserAlreadyExists(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrUserAlreadyExists
		},
	}
	h := newTestHandler(auth, &stubTaskService{})

	rr := doRegister(h, `{"email":"john@example.com","password":"secret","username":"John","role":"Technician"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	bodyContains(t, rr, "User already exists")
}

func TestRegisterHandler_TokenSigningFails(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return registeredUser(), nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(auth, &stubTaskService{})

	rr := doRegister(h, `{"email":"john@example.com","password":"secret","username":"John","role":"Technician"}`)

	// the user stays persisted; only the response reports the signing failure
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	bodyContains(t, rr, "Error creating jwt")
}

func TestRegisterHandler_UnexpectedError(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, errors.New("db failure")
		},
	}
	h := newTestHandler(auth, &stubTaskService{})

	rr := doRegister(h, `{"email":"john@example.com","password":"secret","username":"John","role":"Technician"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NotContains(t, rr.Body.String(), "db failure", "internal detail must not leak")
}

func TestRegisterHandler_InvalidJSON(t *testing.T) {
	h := newTestHandler(&stubAuthService{}, &stubTaskService{})

	rr := doRegister(h, `{not json`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	bodyContains(t, rr, "Missing body properties")
}

func TestLoginHandler_Success(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, "john@example.com", req.Email)
			return registeredUser(), nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
		},
	}
	h := newTestHandler(auth, &stubTaskService{})

	rr := doLogin(h, `{"email":"john@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.NotContains(t, rr.Body.String(), "password_hash")
}

func TestLoginHandler_Failures(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
	}{
		{"missing fields", service.ErrMissingFields, http.StatusBadRequest},
		{"unknown email", service.ErrUserNotFound, http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"storage error", errors.New("db failure"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &stubAuthService{
				loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
					return models.User{}, tt.loginErr
				},
			}
			h := newTestHandler(auth, &stubTaskService{})

			rr := doLogin(h, `{"email":"john@example.com","password":"secret"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
