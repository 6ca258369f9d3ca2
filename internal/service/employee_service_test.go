package service

import (
	"context"
	"testing"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newEmployeeService(repos testRepos) EmployeeService {
	return NewEmployeeService(repos.employees, repos.users, repos.ideas, repos.audits, repos.txManager, zap.NewNop())
}

func TestEmployeeAddCreatesUserAndEmployee(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newEmployeeService(repos)
	dep := seedDepartment(t, repos, "R&D")

	err := svc.Add(context.Background(), "", AddEmployeeRequest{
		Name:        "Alice",
		Email:       "alice@example.com",
		EmployeeID:  "EMP-001",
		DOB:         "1990-04-12",
		Gender:      "female",
		Designation: "Engineer",
		Department:  dep.ID.String(),
		Password:    "strong-password",
	})
	require.NoError(t, err)

	user, err := repos.users.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, user.Role)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("strong-password")))

	emp, err := repos.employees.GetByUserID(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", emp.EmployeeID)
	assert.Equal(t, dep.ID, emp.DepartmentID)
	require.NotNil(t, emp.DOB)
	assert.Equal(t, "1990-04-12", emp.DOB.Format("2006-01-02"))
}

func TestEmployeeAddRejectsDuplicateEmail(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newEmployeeService(repos)
	dep := seedDepartment(t, repos, "R&D")
	seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)

	err := svc.Add(context.Background(), "", AddEmployeeRequest{
		Name:       "Other Alice",
		Email:      "alice@example.com",
		EmployeeID: "EMP-002",
		Department: dep.ID.String(),
		Password:   "strong-password",
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestEmployeeGetFallsBackToUserID(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newEmployeeService(repos)

	dep := seedDepartment(t, repos, "R&D")
	user := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	emp := seedEmployee(t, repos, user, dep, "EMP-001")

	byEmployeeID, err := svc.Get(context.Background(), emp.ID.String())
	require.NoError(t, err)
	assert.Equal(t, emp.ID, byEmployeeID.ID)

	byUserID, err := svc.Get(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, emp.ID, byUserID.ID)

	_, err = svc.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeUpdateRenamesUser(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newEmployeeService(repos)

	dep := seedDepartment(t, repos, "R&D")
	user := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	emp := seedEmployee(t, repos, user, dep, "EMP-001")

	err := svc.Update(context.Background(), "", emp.ID.String(), UpdateEmployeeRequest{
		Name:        "Alice B.",
		Designation: "Senior Engineer",
	})
	require.NoError(t, err)

	updated, err := repos.users.GetByID(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)

	reloaded, err := repos.employees.GetByID(context.Background(), emp.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", reloaded.Designation)
}

func TestEmployeeDeleteCascadesToIdeasAndUser(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newEmployeeService(repos)

	dep := seedDepartment(t, repos, "R&D")
	user := seedUser(t, repos, "Alice", "alice@example.com", "password-1", model.RoleEmployee)
	emp := seedEmployee(t, repos, user, dep, "EMP-001")
	seedIdea(t, repos, emp, "Save paper")
	seedIdea(t, repos, emp, "Recycle more")

	err := svc.Delete(context.Background(), "", emp.ID.String())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), emp.ID.String())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	var ideaCount, userCount int64
	require.NoError(t, db.Model(&model.Idea{}).Where("employee_id = ?", emp.ID).Count(&ideaCount).Error)
	assert.Zero(t, ideaCount)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Count(&userCount).Error)
	assert.Zero(t, userCount)
}

func TestEmployeeDeleteMissing(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc := newEmployeeService(repos)

	err := svc.Delete(context.Background(), "", "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
