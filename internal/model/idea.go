package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Idea lifecycle statuses. Pending is the only non-terminal state.
const (
	IdeaPending  = "Pending"
	IdeaApproved = "Approved"
	IdeaRejected = "Rejected"
)

// ImpactCategories is the closed set of classification tags an idea can
// carry. Submissions outside this list are rejected.
var ImpactCategories = []string{
	"O-Safety and Environment",
	"P-Process Improvement",
	"Q-Quality, Productivity and Cost",
	"M-Monitor and Control",
	"E-Evaluate Predict",
	"S-Speed and Accuracy",
	"A-Automate and Optimize",
	"C-Customer Experience",
	"X-Security",
}

// ValidImpact reports whether impact is one of the nine categories.
func ValidImpact(impact string) bool {
	for _, c := range ImpactCategories {
		if impact == c {
			return true
		}
	}
	return false
}

// Idea is an improvement proposal submitted by an employee.
type Idea struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Employee    Employee  `gorm:"foreignKey:EmployeeID" json:"employeeId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Impact      string    `gorm:"type:varchar(64);not null" json:"impact"`
	AppliedDate time.Time `gorm:"not null" json:"appliedDate"`
	Status      string    `gorm:"type:varchar(32);not null;default:Pending" json:"status"`
	Remarks     string    `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (i *Idea) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
