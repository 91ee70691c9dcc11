package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the structured data embedded in and recovered from a signed
// token: the user's identity plus the role (name and permission string)
// the access gate uses to build the caller's permission set.
//
// The user ID travels in the standard "sub" claim; issued/expiry timestamps
// in "iat"/"exp" as defined by RFC 7519.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the user's display name.
	Name string `json:"name"`

	// Email is the user's unique email address.
	Email string `json:"email"`

	// Role carries the role name and its delimited permission string.
	// The internal role ID is never embedded.
	Role Role `json:"role"`
}

// GetUserID extracts the user identifier from the "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c *Claims) GetUserID() (int64, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from claims: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from claims to int64: %w", err)
	}

	return userID, nil
}

// Token wraps a signed JWT with its decoded claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// response bodies. UserID is a cached, parsed copy of the "sub" claim.
type Token struct {
	// Claims is the decoded claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
