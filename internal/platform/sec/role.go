// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Operator Roles

// UserRole represents the authorization level granted to a token holder.
type UserRole string

const (
	// Can trigger catalog reloads
	RoleAdmin UserRole = "admin"

	// Read-only operator access (health details, dashboards)
	RoleViewer UserRole = "viewer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
