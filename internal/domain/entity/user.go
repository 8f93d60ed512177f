// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan is the billing tier attached to an account.
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// User is the identity record owned by the credential store.
type User struct {
	ID               uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Name             string           // The user's display name.
	Email            string           // Login identifier, stored normalized (see NormalizeEmail).
	PasswordHash     string           // bcrypt hash; never serialized to clients.
	Role             Role             // customer or admin.
	Company          string           // Optional company the account belongs to.
	Industry         string           // Optional industry used by the marketing features.
	SubscriptionPlan SubscriptionPlan // Billing tier, free by default.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// WithoutPassword returns a copy of the user with the password hash removed.
func (u *User) WithoutPassword() *User {
	if u == nil {
		return nil
	}
	cloned := *u
	cloned.PasswordHash = ""

	return &cloned
}

// NormalizeEmail trims and lower-cases an email so that uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
