package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/config"
	"backend/internal/mailer"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Employee{},
		&model.Idea{},
		&model.AuditLog{},
	)
	require.NoError(t, err)

	return db
}

// fakeSender records outbound mail instead of delivering it.
type fakeSender struct {
	sent []mailer.Message
}

func (f *fakeSender) Send(msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

// fakePublisher records broadcast events.
type fakePublisher struct {
	events []string
}

func (f *fakePublisher) Publish(event string, data interface{}) {
	f.events = append(f.events, event)
}

type testRepos struct {
	users       repository.UserRepository
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	ideas       repository.IdeaRepository
	audits      repository.AuditRepository
	txManager   repository.TransactionManager
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		users:       repository.NewUserRepository(db),
		departments: repository.NewDepartmentRepository(db),
		employees:   repository.NewEmployeeRepository(db),
		ideas:       repository.NewIdeaRepository(db),
		audits:      repository.NewAuditRepository(db),
		txManager:   repository.NewTransactionManager(db),
	}
}

var testNotify = config.NotifyConfig{
	AdminEmail:      "admin@example.com",
	FrontendBaseURL: "http://localhost:5173",
}

func seedUser(t *testing.T, repos testRepos, name, email, password, role string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, repos.users.Create(context.Background(), user))
	return user
}

func seedDepartment(t *testing.T, repos testRepos, name string) *model.Department {
	t.Helper()

	dep := &model.Department{Name: name, Description: name + " department"}
	require.NoError(t, repos.departments.Create(context.Background(), dep))
	return dep
}

func seedEmployee(t *testing.T, repos testRepos, user *model.User, dep *model.Department, employeeID string) *model.Employee {
	t.Helper()

	emp := &model.Employee{
		UserID:       user.ID,
		EmployeeID:   employeeID,
		Designation:  "Engineer",
		DepartmentID: dep.ID,
	}
	require.NoError(t, repos.employees.Create(context.Background(), emp))
	return emp
}

func seedIdea(t *testing.T, repos testRepos, emp *model.Employee, title string) *model.Idea {
	t.Helper()

	idea := &model.Idea{
		EmployeeID:  emp.ID,
		Title:       title,
		Description: "description of " + title,
		Impact:      "P-Process Improvement",
		AppliedDate: time.Now(),
		Status:      model.IdeaPending,
	}
	require.NoError(t, repos.ideas.Create(context.Background(), idea))
	return idea
}
