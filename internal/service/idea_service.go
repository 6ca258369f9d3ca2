package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"backend/internal/config"
	"backend/internal/mailer"
	"backend/internal/model"
	"backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Event names broadcast to dashboard clients.
const (
	EventIdeaSubmitted     = "idea.submitted"
	EventIdeaStatusChanged = "idea.status_changed"
)

// EventPublisher pushes idea lifecycle events to connected dashboards.
// A nil publisher disables broadcasting.
type EventPublisher interface {
	Publish(event string, data interface{})
}

type AddIdeaRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Impact      string `json:"impact" binding:"required"`
	AppliedDate string `json:"appliedDate" binding:"required"`
}

type UpdateIdeaRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

// IdeaService handles submission, listing and review of ideas.
type IdeaService interface {
	Add(ctx context.Context, userID string, req AddIdeaRequest) (*model.Idea, error)
	List(ctx context.Context, page, limit int) ([]model.Idea, int64, error)
	ListByEmployee(ctx context.Context, id string) ([]model.Idea, error)
	Detail(ctx context.Context, id string) (*model.Idea, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateIdeaRequest) (*model.Idea, error)
}

type ideaService struct {
	ideas     repository.IdeaRepository
	employees repository.EmployeeRepository
	audits    repository.AuditRepository
	txManager repository.TransactionManager
	mail      mailer.Sender
	notify    config.NotifyConfig
	events    EventPublisher
	logger    *zap.Logger
}

func NewIdeaService(
	ideas repository.IdeaRepository,
	employees repository.EmployeeRepository,
	audits repository.AuditRepository,
	txManager repository.TransactionManager,
	mail mailer.Sender,
	notify config.NotifyConfig,
	events EventPublisher,
	logger *zap.Logger,
) IdeaService {
	return &ideaService{
		ideas:     ideas,
		employees: employees,
		audits:    audits,
		txManager: txManager,
		mail:      mail,
		notify:    notify,
		events:    events,
		logger:    logger,
	}
}

// Add persists a new idea for the submitting user's employee record and
// notifies the admin recipient. Notification failures are logged, never
// surfaced: the submission itself has already succeeded.
func (s *ideaService) Add(ctx context.Context, userID string, req AddIdeaRequest) (*model.Idea, error) {
	if !model.ValidImpact(req.Impact) {
		return nil, ErrInvalidImpact
	}

	appliedDate, err := time.Parse("2006-01-02", req.AppliedDate)
	if err != nil {
		if appliedDate, err = time.Parse(time.RFC3339, req.AppliedDate); err != nil {
			return nil, ErrInvalidDate
		}
	}

	employee, err := s.employees.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	idea := &model.Idea{
		EmployeeID:  employee.ID,
		Title:       req.Title,
		Description: req.Description,
		Impact:      req.Impact,
		AppliedDate: appliedDate,
		Status:      model.IdeaPending,
	}
	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, err
	}

	s.notifyAdmin(idea, employee)
	s.publish(EventIdeaSubmitted, idea)

	return idea, nil
}

func (s *ideaService) List(ctx context.Context, page, limit int) ([]model.Idea, int64, error) {
	return s.ideas.List(ctx, page, limit)
}

// ListByEmployee resolves the path id as an employee record id first; when
// nothing matches it retries treating the id as a user id, since the client
// calls this route with either.
func (s *ideaService) ListByEmployee(ctx context.Context, id string) ([]model.Idea, error) {
	ideas, err := s.ideas.ListByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(ideas) > 0 {
		return ideas, nil
	}

	employee, err := s.employees.GetByUserID(ctx, id)
	if err != nil {
		return ideas, nil
	}
	return s.ideas.ListByEmployee(ctx, employee.ID.String())
}

func (s *ideaService) Detail(ctx context.Context, id string) (*model.Idea, error) {
	idea, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}
	return idea, nil
}

// UpdateStatus moves a Pending idea to Approved or Rejected. The transition
// is terminal: once reviewed, an idea cannot change status again. Remarks
// are stored verbatim and the submitting employee is emailed exactly once.
func (s *ideaService) UpdateStatus(ctx context.Context, actorID, id string, req UpdateIdeaRequest) (*model.Idea, error) {
	if req.Status != model.IdeaApproved && req.Status != model.IdeaRejected {
		return nil, ErrInvalidStatus
	}

	idea, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if idea.Status != model.IdeaPending {
			return ErrIdeaFinalized
		}

		idea.Status = req.Status
		idea.Remarks = req.Remarks
		if err := s.ideas.Update(txCtx, idea); err != nil {
			return err
		}

		return s.audits.Create(txCtx, auditEntry(actorID, model.ActionUpdateIdeaStatus, idea.ID.String(), idea.Title, map[string]interface{}{
			"status":  req.Status,
			"remarks": req.Remarks,
		}))
	})
	if err != nil {
		return nil, err
	}

	s.notifyEmployee(ctx, idea)
	s.publish(EventIdeaStatusChanged, idea)

	return idea, nil
}

func (s *ideaService) notifyAdmin(idea *model.Idea, employee *model.Employee) {
	if s.notify.AdminEmail == "" {
		return
	}

	body := `<p>Dear Admin,</p>
      <p>A new idea titled "<strong>` + idea.Title + `</strong>" has been submitted.</p>
      <ul>
          <li><strong>Name:</strong> ` + employee.User.Name + `</li>
          <li><strong>Employee ID:</strong> ` + employee.EmployeeID + `</li>
          <li><strong>Department:</strong> ` + employee.Department.Name + `</li>
          <li><strong>Designation:</strong> ` + employee.Designation + `</li>
      </ul>
      <p>Details of the idea:</p>
      <ul>
          <li><strong>Description:</strong> ` + idea.Description + `</li>
          <li><strong>Impact:</strong> ` + idea.Impact + `</li>
          <li><strong>Applied Date:</strong> ` + idea.AppliedDate.Format("1/2/2006") + `</li>
      </ul>
      <p>Thank you,<br />TKIL Team</p>`

	if err := s.mail.Send(mailer.Message{To: s.notify.AdminEmail, Subject: "New Idea Submitted", HTML: body}); err != nil {
		s.logger.Error("failed to send new idea notification",
			zap.String("idea_id", idea.ID.String()),
			zap.Error(err))
	}
}

func (s *ideaService) notifyEmployee(ctx context.Context, idea *model.Idea) {
	employee, err := s.employees.GetByID(ctx, idea.EmployeeID.String())
	if err != nil {
		s.logger.Error("failed to load employee for status notification",
			zap.String("idea_id", idea.ID.String()),
			zap.Error(err))
		return
	}

	body := `<p>Dear ` + employee.User.Name + `,</p>
      <p>Your idea titled "<strong>` + idea.Title + `</strong>" has been ` + strings.ToLower(idea.Status) + `.</p>
      <p><strong>Remarks:</strong> ` + idea.Remarks + `</p>
      <p>Thank you for your contribution to TKIL!</p>`

	if err := s.mail.Send(mailer.Message{To: employee.User.Email, Subject: "Your Idea Status Update", HTML: body}); err != nil {
		s.logger.Error("failed to send idea status notification",
			zap.String("idea_id", idea.ID.String()),
			zap.Error(err))
	}
}

func (s *ideaService) publish(event string, idea *model.Idea) {
	if s.events == nil {
		return
	}
	s.events.Publish(event, map[string]interface{}{
		"id":     idea.ID.String(),
		"title":  idea.Title,
		"status": idea.Status,
		"impact": idea.Impact,
	})
}
