package models

// Role is a named bundle of permission tokens shared by many users.
// Permissions are stored as a single delimited string and parsed into a
// typed PermissionSet exactly once, at the boundary where the record is
// loaded.
type Role struct {
	// RoleID is the unique identifier of the role.
	RoleID int64 `json:"-"`

	// Name is the unique role name (e.g. "Technician", "Manager").
	Name string `json:"name"`

	// Permissions is the permission tokens joined by PermissionDelimiter,
	// as persisted in storage and embedded in token claims.
	Permissions string `json:"permissions"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// PermissionSet parses the role's delimited permission string into a typed
// set, dropping tokens outside the closed vocabulary.
func (r Role) PermissionSet() PermissionSet {
	return ParsePermissions(r.Permissions)
}
