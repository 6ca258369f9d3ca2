package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// DepartmentRepository defines the interface for data access of Department entities
type DepartmentRepository interface {
	Create(ctx context.Context, dep *model.Department) error
	GetByID(ctx context.Context, id string) (*model.Department, error)
	List(ctx context.Context, page, limit int) ([]model.Department, int64, error)
	Update(ctx context.Context, dep *model.Department) error
	Delete(ctx context.Context, id string) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository returns a new instance of DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dep *model.Department) error {
	return GetDB(ctx, r.db).Create(dep).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*model.Department, error) {
	var dep model.Department
	if err := GetDB(ctx, r.db).First(&dep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dep, nil
}

func (r *departmentRepository) List(ctx context.Context, page, limit int) ([]model.Department, int64, error) {
	var deps []model.Department
	var total int64

	if err := GetDB(ctx, r.db).Model(&model.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := GetDB(ctx, r.db).Order("created_at ASC").Offset(offset).Limit(limit).Find(&deps).Error; err != nil {
		return nil, 0, err
	}

	return deps, total, nil
}

func (r *departmentRepository) Update(ctx context.Context, dep *model.Department) error {
	return GetDB(ctx, r.db).Save(dep).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Department{}).Error
}
