package models

import "strings"

// Permission is a single token drawn from a fixed closed vocabulary,
// granting one specific action.
type Permission string

// The closed permission vocabulary. Tokens outside this set are ignored
// when parsing role permission strings.
const (
	PermissionCreateTask   Permission = "create_task"
	PermissionReadTask     Permission = "read_task"
	PermissionReadMyTasks  Permission = "read_my_tasks"
	PermissionUpdateTask   Permission = "update_task"
	PermissionDeleteTask   Permission = "delete_task"
	PermissionReadAllTasks Permission = "read_all_tasks"
)

// PermissionDelimiter separates permission tokens in the persisted
// role permission string.
const PermissionDelimiter = ";"

// knownPermissions is the membership index of the closed vocabulary.
var knownPermissions = map[Permission]struct{}{
	PermissionCreateTask:   {},
	PermissionReadTask:     {},
	PermissionReadMyTasks:  {},
	PermissionUpdateTask:   {},
	PermissionDeleteTask:   {},
	PermissionReadAllTasks: {},
}

// Valid reports whether the permission belongs to the closed vocabulary.
func (p Permission) Valid() bool {
	_, ok := knownPermissions[p]
	return ok
}

// PermissionSet is an unordered set of permission tokens. It is parsed once
// from the role's delimited string when the role record is loaded and passed
// onward as a typed value; downstream code never re-splits strings.
type PermissionSet map[Permission]struct{}

// ParsePermissions splits a delimited permission string into a PermissionSet.
// Empty fragments and tokens outside the closed vocabulary are dropped.
func ParsePermissions(raw string) PermissionSet {
	set := make(PermissionSet)
	for _, part := range strings.Split(raw, PermissionDelimiter) {
		p := Permission(strings.TrimSpace(part))
		if p.Valid() {
			set[p] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the given permission.
// Membership is an exact token match.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// String joins the set's tokens with PermissionDelimiter.
// Order is not guaranteed; the set is unordered.
func (s PermissionSet) String() string {
	parts := make([]string, 0, len(s))
	for p := range s {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, PermissionDelimiter)
}
