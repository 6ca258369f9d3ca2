package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// EmployeeRepository defines the interface for data access of Employee entities
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByUserID(ctx context.Context, userID string) (*model.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]model.Employee, error)
	List(ctx context.Context, page, limit int) ([]model.Employee, int64, error)
	Update(ctx context.Context, emp *model.Employee) error
	Delete(ctx context.Context, id string) error
	DeleteByDepartment(ctx context.Context, departmentID string) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository returns a new instance of EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *model.Employee) error {
	return GetDB(ctx, r.db).Create(emp).Error
}

// preloaded ensures employees always come back with their user (password
// never leaves the model) and department.
func preloaded(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Department")
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var emp model.Employee
	if err := preloaded(GetDB(ctx, r.db)).First(&emp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (*model.Employee, error) {
	var emp model.Employee
	if err := preloaded(GetDB(ctx, r.db)).First(&emp, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	var emp model.Employee
	if err := preloaded(GetDB(ctx, r.db)).First(&emp, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) ListByDepartment(ctx context.Context, departmentID string) ([]model.Employee, error) {
	var emps []model.Employee
	if err := preloaded(GetDB(ctx, r.db)).Where("department_id = ?", departmentID).Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *employeeRepository) List(ctx context.Context, page, limit int) ([]model.Employee, int64, error) {
	var emps []model.Employee
	var total int64

	if err := GetDB(ctx, r.db).Model(&model.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := preloaded(GetDB(ctx, r.db)).Order("created_at ASC").Offset(offset).Limit(limit).Find(&emps).Error; err != nil {
		return nil, 0, err
	}

	return emps, total, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *model.Employee) error {
	return GetDB(ctx, r.db).Save(emp).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Employee{}).Error
}

func (r *employeeRepository) DeleteByDepartment(ctx context.Context, departmentID string) error {
	return GetDB(ctx, r.db).Where("department_id = ?", departmentID).Delete(&model.Employee{}).Error
}
