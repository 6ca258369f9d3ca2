package handler

import (
	"errors"
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/internal/token"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler sets up the routing dependencies for auth endpoints
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes binds the auth endpoints under /api/auth
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/signup", h.Signup)
		auth.GET("/verify", requireAuth, h.Verify)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password/:token", h.ResetPassword)
	}
}

// Login authenticates a user and returns a session token
// @Summary      Login
// @Description  Authenticates by email and password, returning a bearer token and the user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.LoginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload"))
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"token": res.Token, "user": res.User}))
}

// Signup self-registers a new employee account
// @Summary      Signup
// @Description  Registers a new user with the employee role and its employee record
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.SignupRequest  true  "Profile"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.authService.Signup(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OK(gin.H{"message": "User registered successfully"}))
}

// Verify resolves the bearer token back to its user
// @Summary      Verify token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Err("Authorization is missing"))
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"user": user}))
}

// ForgotPassword emails a reset link
// @Summary      Request password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.ForgotPasswordRequest  true  "Email"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req service.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload"))
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"message": "Password reset link sent to your email."}))
}

// ResetPassword sets a new password using the emailed token
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token    path  string                         true  "Reset token"
// @Param        payload  body  service.ResetPasswordRequest  true  "New password"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload"))
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"message": "Password has been reset successfully."}))
}

// respondError maps service errors to the fixed status codes the client
// expects: 404 for not-found and credential mismatches, 400 for validation,
// 401 for bad tokens, 500 otherwise.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, response.Err(err.Error()))
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
	case errors.Is(err, token.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, response.Err(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
	}
}
