package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/service"
	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
)

// register handles POST /auth/register.
//
// Status codes follow the published contract: 422 for missing body
// properties, 400 for a taken email or a signing failure, 200 with the user
// record plus token on success. A signing failure leaves the user persisted;
// the account can still log in afterwards.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, msgMissingBodyProperties, http.StatusUnprocessableEntity)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			log.Err(err).Msg("missing body properties")
			utils.WriteMessage(w, msgMissingBodyProperties, http.StatusUnprocessableEntity)
			return
		case errors.Is(err, service.ErrUserAlreadyExists):
			log.Err(err).Msg("user already exists")
			utils.WriteMessage(w, msgUserAlreadyExists, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgErrorCreatingJWT, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{User: registeredUser, Token: token.SignedString}, http.StatusOK)
}

// login handles POST /auth/login.
//
// Missing fields and unknown emails both yield a plain 400; a wrong password
// yields 401. The success body matches register: user record plus token,
// credentials stripped.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("email", req.Email).Msg("wrong password")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrMissingFields) || errors.Is(err, service.ErrUserNotFound):
			log.Err(err).Str("email", req.Email).Msg("invalid login data")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgErrorCreatingJWT, http.StatusBadRequest)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{User: foundUser, Token: token.SignedString}, http.StatusOK)
}
