// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access profile of a user in the workflow.
type Role string

const (
	// RoleAdmin can do everything: approve, purchase and manage roles.
	RoleAdmin Role = "admin"
	// RoleComprador belongs to the purchasing team and records fulfillments.
	RoleComprador Role = "comprador"
	// RoleAprovador reviews pending requests and approves or rejects them.
	RoleAprovador Role = "aprovador"
	// RoleUser is the default profile; it can only submit and track requests.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleComprador, RoleAprovador, RoleUser:
		return true
	default:
		return false
	}
}

// CanApprove reports whether this role may approve or reject pending requests.
func (r Role) CanApprove() bool {
	return r == RoleAdmin || r == RoleAprovador
}

// CanPurchase reports whether this role may confirm purchases.
func (r Role) CanPurchase() bool {
	return r == RoleAdmin || r == RoleComprador
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
