// Package entity contains the core business objects of the project.
package entity

// Role gates access to the admin routes.
type Role string

const (
	// RoleCustomer is the default role assigned at signup.
	RoleCustomer Role = "customer"
	// RoleAdmin grants access to the admin routes.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole maps a stored role onto a known Role. Unknown values never grant admin.
func ParseRole(s string) Role {
	if role := Role(s); role.IsValid() {
		return role
	}

	return RoleCustomer
}

// ParsePlan maps a stored plan onto a known SubscriptionPlan, defaulting to free.
func ParsePlan(s string) SubscriptionPlan {
	switch plan := SubscriptionPlan(s); plan {
	case PlanFree, PlanPro, PlanEnterprise:
		return plan
	default:
		return PlanFree
	}
}
