package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AddEmployeeRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	EmployeeID    string `json:"employeeId" binding:"required"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	Designation   string `json:"designation"`
	Department    string `json:"department" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Role          string `json:"role"`
}

type UpdateEmployeeRequest struct {
	Name          string `json:"name"`
	MaritalStatus string `json:"maritalStatus"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
}

// EmployeeService handles employee CRUD and the employee cascade.
type EmployeeService interface {
	Add(ctx context.Context, actorID string, req AddEmployeeRequest) error
	Get(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context, page, limit int) ([]model.Employee, int64, error)
	Update(ctx context.Context, actorID, id string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, actorID, id string) error
}

type employeeService struct {
	employees repository.EmployeeRepository
	users     repository.UserRepository
	ideas     repository.IdeaRepository
	audits    repository.AuditRepository
	txManager repository.TransactionManager
	logger    *zap.Logger
}

func NewEmployeeService(
	employees repository.EmployeeRepository,
	users repository.UserRepository,
	ideas repository.IdeaRepository,
	audits repository.AuditRepository,
	txManager repository.TransactionManager,
	logger *zap.Logger,
) EmployeeService {
	return &employeeService{
		employees: employees,
		users:     users,
		ideas:     ideas,
		audits:    audits,
		txManager: txManager,
		logger:    logger,
	}
}

func (s *employeeService) Add(ctx context.Context, actorID string, req AddEmployeeRequest) error {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return ErrDuplicateUser
	}

	departmentID, err := uuid.Parse(req.Department)
	if err != nil {
		return ErrDepartmentNotFound
	}

	role := req.Role
	if role == "" {
		role = model.RoleEmployee
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var dob *time.Time
	if req.DOB != "" {
		if parsed, parseErr := time.Parse("2006-01-02", req.DOB); parseErr == nil {
			dob = &parsed
		}
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		user := &model.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashedPassword),
			Role:     role,
			IsActive: true,
		}
		if err := s.users.Create(txCtx, user); err != nil {
			return err
		}

		employee := &model.Employee{
			UserID:        user.ID,
			EmployeeID:    req.EmployeeID,
			DOB:           dob,
			Gender:        req.Gender,
			MaritalStatus: req.MaritalStatus,
			Designation:   req.Designation,
			DepartmentID:  departmentID,
		}
		if err := s.employees.Create(txCtx, employee); err != nil {
			return err
		}

		return s.audits.Create(txCtx, auditEntry(actorID, model.ActionCreateEmployee, employee.ID.String(), req.Name, nil))
	})
}

// Get resolves the path id as an employee record id first and falls back to
// treating it as a user id, since the client calls it both ways.
func (s *employeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err == nil {
		return emp, nil
	}

	emp, err = s.employees.GetByUserID(ctx, id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *employeeService) List(ctx context.Context, page, limit int) ([]model.Employee, int64, error) {
	return s.employees.List(ctx, page, limit)
}

func (s *employeeService) Update(ctx context.Context, actorID, id string, req UpdateEmployeeRequest) error {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	if req.MaritalStatus != "" {
		emp.MaritalStatus = req.MaritalStatus
	}
	if req.Designation != "" {
		emp.Designation = req.Designation
	}
	if req.Department != "" {
		departmentID, parseErr := uuid.Parse(req.Department)
		if parseErr != nil {
			return ErrDepartmentNotFound
		}
		emp.DepartmentID = departmentID
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if req.Name != "" {
			if err := s.users.UpdateName(txCtx, emp.UserID.String(), req.Name); err != nil {
				return err
			}
		}
		if err := s.employees.Update(txCtx, emp); err != nil {
			return err
		}
		return s.audits.Create(txCtx, auditEntry(actorID, model.ActionUpdateEmployee, emp.ID.String(), emp.EmployeeID, nil))
	})
}

// Delete removes an employee's ideas, the employee, and the linked user
// account, in that order, inside one transaction.
func (s *employeeService) Delete(ctx context.Context, actorID, id string) error {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ideas.DeleteByEmployee(txCtx, emp.ID.String()); err != nil {
			return err
		}
		if err := s.employees.Delete(txCtx, emp.ID.String()); err != nil {
			return err
		}
		if err := s.users.Delete(txCtx, emp.UserID.String()); err != nil {
			return err
		}
		return s.audits.Create(txCtx, auditEntry(actorID, model.ActionDeleteEmployee, emp.ID.String(), emp.EmployeeID, nil))
	})
	if err != nil {
		return err
	}

	s.logger.Info("employee cascade delete completed",
		zap.String("employee_id", id),
		zap.String("employee", emp.EmployeeID))

	return nil
}
