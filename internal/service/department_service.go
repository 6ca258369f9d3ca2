package service

import (
	"context"
	"errors"

	"backend/internal/model"
	"backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DepartmentRequest struct {
	Name        string `json:"dep_name" binding:"required"`
	Description string `json:"description"`
}

// DepartmentService handles department CRUD and the department cascade.
type DepartmentService interface {
	Create(ctx context.Context, actorID string, req DepartmentRequest) (*model.Department, error)
	GetByID(ctx context.Context, id string) (*model.Department, error)
	List(ctx context.Context, page, limit int) ([]model.Department, int64, error)
	Update(ctx context.Context, actorID, id string, req DepartmentRequest) (*model.Department, error)
	Delete(ctx context.Context, actorID, id string) (*model.Department, error)
}

type departmentService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	ideas       repository.IdeaRepository
	users       repository.UserRepository
	audits      repository.AuditRepository
	txManager   repository.TransactionManager
	logger      *zap.Logger
}

func NewDepartmentService(
	departments repository.DepartmentRepository,
	employees repository.EmployeeRepository,
	ideas repository.IdeaRepository,
	users repository.UserRepository,
	audits repository.AuditRepository,
	txManager repository.TransactionManager,
	logger *zap.Logger,
) DepartmentService {
	return &departmentService{
		departments: departments,
		employees:   employees,
		ideas:       ideas,
		users:       users,
		audits:      audits,
		txManager:   txManager,
		logger:      logger,
	}
}

func (s *departmentService) Create(ctx context.Context, actorID string, req DepartmentRequest) (*model.Department, error) {
	dep := &model.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.departments.Create(txCtx, dep); err != nil {
			return err
		}
		return s.audits.Create(txCtx, auditEntry(actorID, model.ActionCreateDepartment, dep.ID.String(), dep.Name, nil))
	})
	if err != nil {
		return nil, err
	}

	return dep, nil
}

func (s *departmentService) GetByID(ctx context.Context, id string) (*model.Department, error) {
	dep, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return dep, nil
}

func (s *departmentService) List(ctx context.Context, page, limit int) ([]model.Department, int64, error) {
	return s.departments.List(ctx, page, limit)
}

func (s *departmentService) Update(ctx context.Context, actorID, id string, req DepartmentRequest) (*model.Department, error) {
	dep, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dep.Name = req.Name
	dep.Description = req.Description

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.departments.Update(txCtx, dep); err != nil {
			return err
		}
		return s.audits.Create(txCtx, auditEntry(actorID, model.ActionUpdateDepartment, dep.ID.String(), dep.Name, nil))
	})
	if err != nil {
		return nil, err
	}

	return dep, nil
}

// Delete removes a department and everything under it: first the ideas of
// its employees, then the employees, their user accounts, and finally the
// department itself. The whole cascade runs in one transaction so an
// interrupted delete cannot strand orphans.
func (s *departmentService) Delete(ctx context.Context, actorID, id string) (*model.Department, error) {
	dep, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		employees, err := s.employees.ListByDepartment(txCtx, id)
		if err != nil {
			return err
		}

		employeeIDs := make([]string, 0, len(employees))
		userIDs := make([]string, 0, len(employees))
		for _, emp := range employees {
			employeeIDs = append(employeeIDs, emp.ID.String())
			userIDs = append(userIDs, emp.UserID.String())
		}

		if err := s.ideas.DeleteByEmployees(txCtx, employeeIDs); err != nil {
			return err
		}
		if err := s.employees.DeleteByDepartment(txCtx, id); err != nil {
			return err
		}
		if err := s.users.DeleteMany(txCtx, userIDs); err != nil {
			return err
		}
		if err := s.departments.Delete(txCtx, id); err != nil {
			return err
		}

		return s.audits.Create(txCtx, auditEntry(actorID, model.ActionDeleteDepartment, dep.ID.String(), dep.Name, map[string]interface{}{
			"employees_removed": len(employees),
		}))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("department cascade delete completed",
		zap.String("department_id", id),
		zap.String("department", dep.Name))

	return dep, nil
}
