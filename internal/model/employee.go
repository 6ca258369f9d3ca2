package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee links one User (1:1) to one Department (many:1) and carries the
// organizational fields the identity record does not.
type Employee struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	User          User       `gorm:"foreignKey:UserID" json:"userId"`
	EmployeeID    string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"employeeId"`
	DOB           *time.Time `gorm:"type:date" json:"dob,omitempty"`
	Gender        string     `gorm:"type:varchar(32)" json:"gender,omitempty"`
	MaritalStatus string     `gorm:"type:varchar(32)" json:"maritalStatus,omitempty"`
	Designation   string     `gorm:"type:varchar(255)" json:"designation"`
	DepartmentID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Department    Department `gorm:"foreignKey:DepartmentID" json:"department"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
