package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/config"
	"backend/internal/mailer"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DTOs for Request validation
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	EmployeeID  string `json:"employeeId" binding:"required"`
	Designation string `json:"designation"`
	Department  string `json:"department" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// AuthUser is the slimmed-down user shape returned to the client on login.
type AuthUser struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthService covers login, self-registration and the password flows.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Signup(ctx context.Context, req SignupRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

type authService struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	txManager repository.TransactionManager
	tokens    *token.Manager
	mail      mailer.Sender
	notify    config.NotifyConfig
	logger    *zap.Logger
}

// NewAuthService wires the auth flows together.
func NewAuthService(
	users repository.UserRepository,
	employees repository.EmployeeRepository,
	txManager repository.TransactionManager,
	tokens *token.Manager,
	mail mailer.Sender,
	notify config.NotifyConfig,
	logger *zap.Logger,
) AuthService {
	return &authService{
		users:     users,
		employees: employees,
		txManager: txManager,
		tokens:    tokens,
		mail:      mail,
		notify:    notify,
		logger:    logger,
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrWrongPassword
	}

	tokenString, err := s.tokens.IssueSession(user.ID.String(), user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token: tokenString,
		User:  AuthUser{ID: user.ID, Name: user.Name, Role: user.Role},
	}, nil
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) error {
	if len(req.Password) < 8 {
		return ErrWeakPassword
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return ErrDuplicateUser
	}

	departmentID, err := uuid.Parse(req.Department)
	if err != nil {
		return ErrDepartmentNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// User and Employee are created in one transaction so a failed Employee
	// insert cannot leave a dangling login.
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		user := &model.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashedPassword),
			Role:     model.RoleEmployee, // Self-registration never grants admin
			IsActive: true,
		}
		if err := s.users.Create(txCtx, user); err != nil {
			return err
		}

		employee := &model.Employee{
			UserID:       user.ID,
			EmployeeID:   req.EmployeeID,
			Designation:  req.Designation,
			DepartmentID: departmentID,
		}
		return s.employees.Create(txCtx, employee)
	})
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return ErrUserNotFound
	}

	resetToken, err := s.tokens.IssueReset(user.ID.String())
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	link := s.notify.FrontendBaseURL + "/reset-password/" + resetToken
	body := `<p>You requested a password reset. Click the link below to reset your password:</p>
           <a href="` + link + `">Reset Password</a>`

	// Unlike the idea notifications, a lost reset mail means a lost account,
	// so delivery failure is surfaced here.
	if err := s.mail.Send(mailer.Message{To: user.Email, Subject: "Password Reset Request", HTML: body}); err != nil {
		s.logger.Error("failed to send password reset email", zap.String("email", user.Email), zap.Error(err))
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.tokens.Verify(resetToken)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.UpdatePassword(ctx, user.ID.String(), string(hashedPassword))
}

func (s *authService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.UpdatePassword(ctx, user.ID.String(), string(hashedPassword))
}
