package service

import (
	"context"
	"testing"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryEmpty(t *testing.T) {
	svc := NewDashboardService(setupTestDB(t))

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalEmployees)
	assert.Zero(t, summary.TotalDepartments)
	assert.Zero(t, summary.IdeaSummary.TotalIdeas)
	assert.Zero(t, summary.IdeaSummary.AppliedFor)
}

func TestDashboardSummaryCountsDistinctSubmitters(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := NewDashboardService(db)

	dep := seedDepartment(t, repos, "R&D")

	userA := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	empA := seedEmployee(t, repos, userA, dep, "EMP-001")
	userB := seedUser(t, repos, "Bob", "bob@example.com", "password-2", model.RoleEmployee)
	empB := seedEmployee(t, repos, userB, dep, "EMP-002")
	userC := seedUser(t, repos, "Carol", "carol@example.com", "password-3", model.RoleEmployee)
	seedEmployee(t, repos, userC, dep, "EMP-003")

	// Alice submits twice, Bob once, Carol never.
	ideaA1 := seedIdea(t, repos, empA, "Save paper")
	seedIdea(t, repos, empA, "Recycle more")
	ideaB := seedIdea(t, repos, empB, "Shorter meetings")

	ideaA1.Status = model.IdeaApproved
	require.NoError(t, repos.ideas.Update(context.Background(), ideaA1))
	ideaB.Status = model.IdeaRejected
	require.NoError(t, repos.ideas.Update(context.Background(), ideaB))

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalEmployees)
	assert.Equal(t, int64(1), summary.TotalDepartments)
	assert.Equal(t, int64(3), summary.IdeaSummary.TotalIdeas)
	assert.Equal(t, int64(2), summary.IdeaSummary.AppliedFor)
	assert.Equal(t, int64(1), summary.IdeaSummary.Approved)
	assert.Equal(t, int64(1), summary.IdeaSummary.Rejected)
	assert.Equal(t, int64(1), summary.IdeaSummary.Pending)
}

func TestDashboardEmployeeSummary(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := NewDashboardService(db)

	dep := seedDepartment(t, repos, "R&D")
	userA := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	empA := seedEmployee(t, repos, userA, dep, "EMP-001")
	userB := seedUser(t, repos, "Bob", "bob@example.com", "password-2", model.RoleEmployee)
	empB := seedEmployee(t, repos, userB, dep, "EMP-002")

	approved := seedIdea(t, repos, empA, "Save paper")
	approved.Status = model.IdeaApproved
	require.NoError(t, repos.ideas.Update(context.Background(), approved))
	seedIdea(t, repos, empA, "Recycle more")
	seedIdea(t, repos, empB, "Shorter meetings")

	summary, err := svc.GetEmployeeSummary(context.Background(), empA.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalIdeas)
	assert.Equal(t, int64(1), summary.Approved)
	assert.Equal(t, int64(0), summary.Rejected)
	assert.Equal(t, int64(1), summary.Pending)

	// Bob's view is scoped to his own ideas.
	other, err := svc.GetEmployeeSummary(context.Background(), empB.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), other.TotalIdeas)
	assert.Equal(t, int64(1), other.Pending)
}
