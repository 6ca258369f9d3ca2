package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values allowed on User.Role
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is the identity record behind both admins and employees.
// Admin users have no Employee record attached.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, never serialized
	Role      string    `gorm:"type:varchar(50);not null" json:"role"`
	IsActive  bool      `gorm:"not null;default:false" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns the ID in Go so the same model works on Postgres
// and the in-memory sqlite used by tests.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
