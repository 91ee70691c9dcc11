// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, credential
// hashing, HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MauricioMilano/kwan-challenge/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthCtxKey is the key used to store the authenticated caller's context
// value produced by the access gate middleware. Used together with
// GetAuthFromContext for type-safe retrieval.
var AuthCtxKey = contextKey("auth")

// AuthContext is the explicit authenticated-context value the access gate
// attaches to the request context after a successful token verification.
// It carries the caller's identity and the permission set parsed once from
// the role's delimited permission string.
type AuthContext struct {
	// UserID is the caller's unique identifier from the token's "sub" claim.
	UserID int64

	// Name is the caller's display name.
	Name string

	// Email is the caller's email address.
	Email string

	// Role is the caller's role as embedded in the token claims.
	Role models.Role

	// Permissions is the caller's typed permission set. Downstream code
	// checks membership here and never re-splits permission strings.
	Permissions models.PermissionSet
}

// GetAuthFromContext retrieves the authenticated caller's context value.
//
// Returns the AuthContext and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	auth, ok := utils.GetAuthFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetAuthFromContext(ctx context.Context) (AuthContext, bool) {
	auth, ok := ctx.Value(AuthCtxKey).(AuthContext)
	return auth, ok
}
