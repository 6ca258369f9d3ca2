package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// IdeaRepository defines the interface for data access of Idea entities
type IdeaRepository interface {
	Create(ctx context.Context, idea *model.Idea) error
	GetByID(ctx context.Context, id string) (*model.Idea, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Idea, error)
	List(ctx context.Context, page, limit int) ([]model.Idea, int64, error)
	Update(ctx context.Context, idea *model.Idea) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
	DeleteByEmployees(ctx context.Context, employeeIDs []string) error
}

type ideaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository returns a new instance of IdeaRepository
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) Create(ctx context.Context, idea *model.Idea) error {
	return GetDB(ctx, r.db).Create(idea).Error
}

// withRelations loads the submitting employee along with their user and
// department, which the idea board always renders together.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Employee").Preload("Employee.User").Preload("Employee.Department")
}

func (r *ideaRepository) GetByID(ctx context.Context, id string) (*model.Idea, error) {
	var idea model.Idea
	if err := withRelations(GetDB(ctx, r.db)).First(&idea, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *ideaRepository) ListByEmployee(ctx context.Context, employeeID string) ([]model.Idea, error) {
	var ideas []model.Idea
	if err := GetDB(ctx, r.db).Where("employee_id = ?", employeeID).Order("created_at DESC").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *ideaRepository) List(ctx context.Context, page, limit int) ([]model.Idea, int64, error) {
	var ideas []model.Idea
	var total int64

	if err := GetDB(ctx, r.db).Model(&model.Idea{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := withRelations(GetDB(ctx, r.db)).Order("created_at DESC").Offset(offset).Limit(limit).Find(&ideas).Error; err != nil {
		return nil, 0, err
	}

	return ideas, total, nil
}

func (r *ideaRepository) Update(ctx context.Context, idea *model.Idea) error {
	return GetDB(ctx, r.db).Save(idea).Error
}

func (r *ideaRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return GetDB(ctx, r.db).Where("employee_id = ?", employeeID).Delete(&model.Idea{}).Error
}

func (r *ideaRepository) DeleteByEmployees(ctx context.Context, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Where("employee_id IN ?", employeeIDs).Delete(&model.Idea{}).Error
}
