package service

import (
	"context"
	"strings"
	"testing"

	"backend/internal/model"
	"backend/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, repos testRepos, sender *fakeSender) (AuthService, *token.Manager) {
	t.Helper()
	tokens := token.NewManager([]byte("test-secret"))
	svc := NewAuthService(repos.users, repos.employees, repos.txManager, tokens, sender, testNotify, zap.NewNop())
	return svc, tokens
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, tokens := newAuthService(t, repos, &fakeSender{})

	user := seedUser(t, repos, "Alice", "alice@example.com", "secret-password", model.RoleAdmin)

	res, err := svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)
	assert.Equal(t, model.RoleAdmin, res.User.Role)

	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLoginUnknownEmail(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})

	seedUser(t, repos, "Alice", "alice@example.com", "secret-password", model.RoleEmployee)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestSignupCreatesUserAndEmployee(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})
	dep := seedDepartment(t, repos, "R&D")

	err := svc.Signup(context.Background(), SignupRequest{
		Name:        "Bob",
		Email:       "bob@example.com",
		EmployeeID:  "EMP-001",
		Designation: "Analyst",
		Department:  dep.ID.String(),
		Password:    "longenough",
	})
	require.NoError(t, err)

	user, err := repos.users.GetByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, user.Role)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("longenough")))

	emp, err := repos.employees.GetByUserID(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", emp.EmployeeID)
	assert.Equal(t, dep.ID, emp.DepartmentID)
}

func TestSignupWeakPasswordPersistsNothing(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})
	dep := seedDepartment(t, repos, "R&D")

	err := svc.Signup(context.Background(), SignupRequest{
		Name:       "Bob",
		Email:      "bob@example.com",
		EmployeeID: "EMP-001",
		Department: dep.ID.String(),
		Password:   "short",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = repos.users.GetByEmail(context.Background(), "bob@example.com")
	assert.Error(t, err)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})
	dep := seedDepartment(t, repos, "R&D")
	seedUser(t, repos, "Bob", "bob@example.com", "longenough", model.RoleEmployee)

	err := svc.Signup(context.Background(), SignupRequest{
		Name:       "Bob Again",
		Email:      "bob@example.com",
		EmployeeID: "EMP-002",
		Department: dep.ID.String(),
		Password:   "longenough",
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestSignupRollsBackUserWhenEmployeeInsertFails(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})
	dep := seedDepartment(t, repos, "R&D")

	existing := seedUser(t, repos, "Eve", "eve@example.com", "longenough", model.RoleEmployee)
	seedEmployee(t, repos, existing, dep, "EMP-001")

	// Duplicate employeeId violates the unique index inside the transaction.
	err := svc.Signup(context.Background(), SignupRequest{
		Name:       "Mallory",
		Email:      "mallory@example.com",
		EmployeeID: "EMP-001",
		Department: dep.ID.String(),
		Password:   "longenough",
	})
	require.Error(t, err)

	_, err = repos.users.GetByEmail(context.Background(), "mallory@example.com")
	assert.Error(t, err, "user row must roll back with the failed employee insert")
}

func TestForgotPasswordEmailsResetLink(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	sender := &fakeSender{}
	svc, tokens := newAuthService(t, repos, sender)

	user := seedUser(t, repos, "Alice", "alice@example.com", "secret-password", model.RoleEmployee)

	require.NoError(t, svc.ForgotPassword(context.Background(), "alice@example.com"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].To)
	assert.Equal(t, "Password Reset Request", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, testNotify.FrontendBaseURL+"/reset-password/")

	// The embedded token must verify back to the same user.
	parts := strings.Split(sender.sent[0].HTML, "/reset-password/")
	require.Len(t, parts, 2)
	raw := strings.SplitN(parts[1], `"`, 2)[0]
	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetPasswordWithValidToken(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, tokens := newAuthService(t, repos, &fakeSender{})

	user := seedUser(t, repos, "Alice", "alice@example.com", "old-password", model.RoleEmployee)

	reset, err := tokens.IssueReset(user.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), reset, "new-password"))

	_, err = svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "new-password"})
	assert.NoError(t, err)
}

func TestResetPasswordBadToken(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})

	err := svc.ResetPassword(context.Background(), "garbage", "new-password")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	repos := newTestRepos(setupTestDB(t))
	svc, _ := newAuthService(t, repos, &fakeSender{})

	user := seedUser(t, repos, "Alice", "alice@example.com", "old-password", model.RoleEmployee)

	err := svc.ChangePassword(context.Background(), user.ID.String(), "wrong-old", "new-password")
	assert.ErrorIs(t, err, ErrWrongOldPassword)

	require.NoError(t, svc.ChangePassword(context.Background(), user.ID.String(), "old-password", "new-password"))

	_, err = svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "new-password"})
	assert.NoError(t, err)
}
