package service

import (
	"context"
	"testing"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIdeaService(repos testRepos, sender *fakeSender, publisher EventPublisher) IdeaService {
	return NewIdeaService(repos.ideas, repos.employees, repos.audits, repos.txManager, sender, testNotify, publisher, zap.NewNop())
}

func TestIdeaAddDefaultsToPendingAndNotifiesAdmin(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	sender := &fakeSender{}
	publisher := &fakePublisher{}
	svc := newIdeaService(repos, sender, publisher)

	dep := seedDepartment(t, repos, "R&D")
	user := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	seedEmployee(t, repos, user, dep, "EMP-001")

	idea, err := svc.Add(context.Background(), user.ID.String(), AddIdeaRequest{
		Title:       "Save paper",
		Description: "Print double sided by default",
		Impact:      "P-Process Improvement",
		AppliedDate: "2026-08-20",
	})
	require.NoError(t, err)
	assert.Equal(t, model.IdeaPending, idea.Status)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, testNotify.AdminEmail, sender.sent[0].To)
	assert.Equal(t, "New Idea Submitted", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "Save paper")
	assert.Contains(t, sender.sent[0].HTML, "EMP-001")

	assert.Equal(t, []string{EventIdeaSubmitted}, publisher.events)
}

func TestIdeaAddRejectsUnknownImpact(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newIdeaService(repos, &fakeSender{}, nil)

	_, err := svc.Add(context.Background(), "irrelevant", AddIdeaRequest{
		Title:       "Save paper",
		Description: "desc",
		Impact:      "Z-Unknown",
		AppliedDate: "2026-08-20",
	})
	assert.ErrorIs(t, err, ErrInvalidImpact)
}

func TestIdeaAddRejectsBadDate(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newIdeaService(repos, &fakeSender{}, nil)

	_, err := svc.Add(context.Background(), "irrelevant", AddIdeaRequest{
		Title:       "Save paper",
		Description: "desc",
		Impact:      "P-Process Improvement",
		AppliedDate: "not a date",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestIdeaAddRequiresEmployeeRecord(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newIdeaService(repos, &fakeSender{}, nil)

	user := seedUser(t, repos, "Ghost", "ghost@example.com", "password-1", model.RoleEmployee)

	_, err := svc.Add(context.Background(), user.ID.String(), AddIdeaRequest{
		Title:       "Save paper",
		Description: "desc",
		Impact:      "P-Process Improvement",
		AppliedDate: "2026-08-20",
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestIdeaListByEmployeeFallsBackToUserID(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newIdeaService(repos, &fakeSender{}, nil)

	dep := seedDepartment(t, repos, "R&D")
	user := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	emp := seedEmployee(t, repos, user, dep, "EMP-001")
	idea := seedIdea(t, repos, emp, "Save paper")

	byEmployeeID, err := svc.ListByEmployee(context.Background(), emp.ID.String())
	require.NoError(t, err)
	require.Len(t, byEmployeeID, 1)
	assert.Equal(t, idea.ID, byEmployeeID[0].ID)

	byUserID, err := svc.ListByEmployee(context.Background(), user.ID.String())
	require.NoError(t, err)
	require.Len(t, byUserID, 1)
	assert.Equal(t, idea.ID, byUserID[0].ID)
}

func TestIdeaUpdateStatusApprovesAndNotifiesOnce(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	sender := &fakeSender{}
	publisher := &fakePublisher{}
	svc := newIdeaService(repos, sender, publisher)

	dep := seedDepartment(t, repos, "R&D")
	user := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	emp := seedEmployee(t, repos, user, dep, "EMP-001")
	idea := seedIdea(t, repos, emp, "Save paper")

	admin := seedUser(t, repos, "Root", "root@example.com", "password-9", model.RoleAdmin)

	updated, err := svc.UpdateStatus(context.Background(), admin.ID.String(), idea.ID.String(), UpdateIdeaRequest{
		Status:  model.IdeaApproved,
		Remarks: "  Great idea!  ",
	})
	require.NoError(t, err)
	assert.Equal(t, model.IdeaApproved, updated.Status)
	// Remarks are stored exactly as submitted, whitespace included.
	assert.Equal(t, "  Great idea!  ", updated.Remarks)

	reloaded, err := svc.Detail(context.Background(), idea.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.IdeaApproved, reloaded.Status)
	assert.Equal(t, "  Great idea!  ", reloaded.Remarks)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].To)
	assert.Equal(t, "Your Idea Status Update", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "approved")

	assert.Equal(t, []string{EventIdeaStatusChanged}, publisher.events)
}

func TestIdeaUpdateStatusIsTerminal(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	sender := &fakeSender{}
	svc := newIdeaService(repos, sender, nil)

	dep := seedDepartment(t, repos, "R&D")
	user := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	emp := seedEmployee(t, repos, user, dep, "EMP-001")
	idea := seedIdea(t, repos, emp, "Save paper")

	_, err := svc.UpdateStatus(context.Background(), "", idea.ID.String(), UpdateIdeaRequest{Status: model.IdeaRejected, Remarks: "no"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "", idea.ID.String(), UpdateIdeaRequest{Status: model.IdeaApproved, Remarks: "changed my mind"})
	assert.ErrorIs(t, err, ErrIdeaFinalized)

	reloaded, err := svc.Detail(context.Background(), idea.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.IdeaRejected, reloaded.Status)
	assert.Equal(t, "no", reloaded.Remarks)

	// Only the first transition emailed the employee.
	assert.Len(t, sender.sent, 1)
}

func TestIdeaUpdateStatusRejectsOtherValues(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newIdeaService(repos, &fakeSender{}, nil)

	_, err := svc.UpdateStatus(context.Background(), "", "irrelevant", UpdateIdeaRequest{Status: "Pending"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), "", "irrelevant", UpdateIdeaRequest{Status: "Maybe"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
