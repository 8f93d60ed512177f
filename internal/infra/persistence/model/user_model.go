// Package model holds the GORM persistence models. They are mapped to and from
// domain entities by the repositories and never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated in Go before insert.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	Role             string    `gorm:"type:varchar(20);not null;default:customer"`
	Company          string    `gorm:"type:varchar(255)"`
	Industry         string    `gorm:"type:varchar(255)"`
	SubscriptionPlan string    `gorm:"type:varchar(20);not null;default:free"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AllModels lists every model handled by auto-migration.
func AllModels() []any {
	return []any{&UserModel{}}
}
