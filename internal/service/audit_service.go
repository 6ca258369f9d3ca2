package service

import (
	"context"
	"encoding/json"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

// AuditService lists the audit trail for admins.
type AuditService interface {
	List(ctx context.Context, page, limit int) ([]model.AuditLog, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) List(ctx context.Context, page, limit int) ([]model.AuditLog, int64, error) {
	return s.repo.List(ctx, page, limit)
}

// auditEntry builds an AuditLog row for an admin mutation. actorID may be
// empty when the action is unattributed.
func auditEntry(actorID, action, entityID, entityName string, details map[string]interface{}) *model.AuditLog {
	var userID *uuid.UUID
	if parsed, err := uuid.Parse(actorID); err == nil {
		userID = &parsed
	}
	payload, _ := json.Marshal(details)
	return &model.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(payload),
	}
}
