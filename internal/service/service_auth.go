package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MauricioMilano/kwan-challenge/internal/config"
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/store"
	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the JWT token
// lifecycle using UserRepository/RoleRepository for persistence and
// HMAC-SHA256 for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// roleRepository resolves role names supplied at registration.
	roleRepository store.RoleRepository

	// hashKey is the HMAC secret mixed into password digests. Must match the
	// value used at registration time for login to succeed.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, roleRepository store.RoleRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that every request field is non-empty, checks for an existing
// account with the same email, resolves the role by name, then persists the
// user together with a fresh salt and HMAC password digest in one repository
// call. The email pre-check is advisory; the unique index on users.email is
// the authoritative guard, so a concurrent duplicate still surfaces as
// ErrUserAlreadyExists.
//
// Returns the persisted user with the role attached or:
//   - ErrMissingFields if any request field is empty.
//   - ErrUserAlreadyExists if the email is already taken.
//   - ErrRoleNotFound if the named role does not exist.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" || req.Username == "" || req.Role == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrMissingFields
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.User{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("user lookup by email failed")
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	role, err := a.roleRepository.FindRoleByName(ctx, req.Role)
	if err != nil {
		if errors.Is(err, store.ErrNoRoleWasFound) {
			return models.User{}, ErrRoleNotFound
		}
		log.Err(err).Str("role", req.Role).Msg("role lookup by name failed")
		return models.User{}, fmt.Errorf("role lookup by name failed: %w", err)
	}

	salt, err := utils.RandomSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	user := models.User{
		Name:   req.Username,
		Email:  req.Email,
		RoleID: role.RoleID,
	}
	auth := models.Auth{
		PasswordHash: utils.HashPassword(salt, req.Password, a.hashKey),
		Salt:         salt,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user, auth)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.Role = &role
	registeredUser.Auth = nil

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email with credentials and role preloaded,
// recomputes the password digest with the stored salt and compares it in
// constant time.
//
// Returns the authenticated user with credentials stripped or:
//   - ErrMissingFields if email or password is empty.
//   - ErrUserNotFound if no account matches the email.
//   - ErrWrongPassword if the digests do not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrMissingFields
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.Auth.PasswordHash, foundUser.Auth.Salt, req.Password, a.hashKey) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	foundUser.Auth = nil

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user's identity and role, is signed with the
// configured tokenSignKey, uses the configured tokenIssuer as the "iss"
// claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrInvalidToken so that callers never learn the cause.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
