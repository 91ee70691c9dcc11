package http

import "errors"

// ErrMalformedAuthorizationHeader is logged by the access gate when the
// "Authorization" header is absent or not of the form "Bearer <token>".
// The HTTP body carries msgAuthHeaderRequired, not this error.
var ErrMalformedAuthorizationHeader = errors.New("missing or malformed `Authorization` header")

// Fixed response bodies. Clients match on these strings, so they are part of
// the API contract and must not drift.
const (
	msgMissingBodyProperties = "Missing body properties"
	msgUserAlreadyExists     = "User already exists"
	msgErrorCreatingJWT      = "Error creating jwt"
	msgForbidden             = "Forbidden: Not allowed to perform this action"
	msgTaskNotFound          = "Task not found"
	msgTaskAlreadyPerformed  = "Task already performed"
	msgInternalServerError   = "Internal server error"
	msgAuthHeaderRequired    = "Authorization header is required and must be in the format 'Bearer <token>'"
)
