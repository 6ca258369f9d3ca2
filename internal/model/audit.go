package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit action identifiers
const (
	ActionCreateDepartment = "department.create"
	ActionUpdateDepartment = "department.update"
	ActionDeleteDepartment = "department.delete"
	ActionCreateEmployee   = "employee.create"
	ActionUpdateEmployee   = "employee.update"
	ActionDeleteEmployee   = "employee.delete"
	ActionUpdateIdeaStatus = "idea.status_update"
)

// AuditLog records admin mutations. Rows are written inside the same
// transaction as the mutation they describe.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	Action     string     `gorm:"type:varchar(64);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(64)" json:"entityId"`
	EntityName string     `gorm:"type:varchar(255)" json:"entityName"`
	Details    string     `gorm:"type:text" json:"details"` // JSON snapshot
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
