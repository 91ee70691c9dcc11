package service

import "errors"

var (
	// ErrMissingFields is returned when a request body omits a required
	// property.
	ErrMissingFields = errors.New("missing body properties")

	// ErrUserAlreadyExists is returned when registration targets an email
	// that is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrRoleNotFound is returned when registration names an unknown role.
	ErrRoleNotFound = errors.New("role not found")

	// ErrUserNotFound is returned when a login email matches no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored digest.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when signing a JWT fails.
	ErrTokenCreationFailed = errors.New("error creating jwt")

	// ErrInvalidToken is the single opaque error for every token validation
	// failure. The underlying cause is never exposed to callers.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTaskNotFound is returned when a task id matches nothing visible to
	// the caller.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskAlreadyPerformed is returned on a second perform attempt. The
	// performed timestamp is set at most once.
	ErrTaskAlreadyPerformed = errors.New("task already performed")
)
