package service

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// IdeaSummary aggregates idea counts by status. AppliedFor is the number of
// distinct employees who have ever submitted an idea (or, in the
// per-employee view, that employee's submission count).
type IdeaSummary struct {
	AppliedFor int64 `json:"appliedFor"`
	TotalIdeas int64 `json:"totalIdeas"`
	Approved   int64 `json:"approved"`
	Rejected   int64 `json:"rejected"`
	Pending    int64 `json:"pending"`
}

// AdminSummary is the admin dashboard projection.
type AdminSummary struct {
	TotalEmployees   int64       `json:"totalEmployees"`
	TotalDepartments int64       `json:"totalDepartments"`
	IdeaSummary      IdeaSummary `json:"ideaSummary"`
}

// DashboardService recomputes role-scoped projections on every request.
type DashboardService interface {
	GetSummary(ctx context.Context) (*AdminSummary, error)
	GetEmployeeSummary(ctx context.Context, employeeID string) (*IdeaSummary, error)
}

type dashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) DashboardService {
	return &dashboardService{db: db}
}

func (s *dashboardService) GetSummary(ctx context.Context) (*AdminSummary, error) {
	var summary AdminSummary

	if err := s.db.WithContext(ctx).Model(&model.Employee{}).Count(&summary.TotalEmployees).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&model.Department{}).Count(&summary.TotalDepartments).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&model.Idea{}).Count(&summary.IdeaSummary.TotalIdeas).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&model.Idea{}).
		Distinct("employee_id").Count(&summary.IdeaSummary.AppliedFor).Error; err != nil {
		return nil, err
	}

	counts, err := s.statusCounts(ctx, "")
	if err != nil {
		return nil, err
	}
	summary.IdeaSummary.Approved = counts[model.IdeaApproved]
	summary.IdeaSummary.Rejected = counts[model.IdeaRejected]
	summary.IdeaSummary.Pending = counts[model.IdeaPending]

	return &summary, nil
}

func (s *dashboardService) GetEmployeeSummary(ctx context.Context, employeeID string) (*IdeaSummary, error) {
	var summary IdeaSummary

	if err := s.db.WithContext(ctx).Model(&model.Idea{}).
		Where("employee_id = ?", employeeID).
		Count(&summary.AppliedFor).Error; err != nil {
		return nil, err
	}
	summary.TotalIdeas = summary.AppliedFor

	counts, err := s.statusCounts(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	summary.Approved = counts[model.IdeaApproved]
	summary.Rejected = counts[model.IdeaRejected]
	summary.Pending = counts[model.IdeaPending]

	return &summary, nil
}

// statusCounts groups ideas by status, optionally scoped to one employee.
func (s *dashboardService) statusCounts(ctx context.Context, employeeID string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	query := s.db.WithContext(ctx).Model(&model.Idea{}).
		Select("status, COUNT(*) as count").
		Group("status")
	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
