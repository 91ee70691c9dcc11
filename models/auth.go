package models

// Auth is the credential record owned 1:1 by a User. It is created only
// alongside its owning user during registration and is never updated or
// returned in any outbound response.
type Auth struct {
	// AuthID is the unique identifier of the credential record.
	AuthID int64 `json:"-"`

	// UserID links the credential to its owning user.
	UserID int64 `json:"-"`

	// PasswordHash is the base64-encoded HMAC-SHA256 digest of the
	// user's password. Never plaintext.
	PasswordHash string `json:"-"`

	// Salt is the random per-user salt, base64-encoded, generated once
	// at registration.
	Salt string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Auth model.
func (a Auth) TableName() string {
	return "auths"
}
