package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department groups employees. Deleting one cascades through its employees
// and their ideas (see DepartmentService.Delete).
type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"dep_name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
