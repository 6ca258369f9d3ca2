package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	authService service.AuthService
}

func NewSettingHandler(authService service.AuthService) *SettingHandler {
	return &SettingHandler{authService: authService}
}

// RegisterRoutes binds the settings endpoints under /api/setting
func (h *SettingHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	setting := router.Group("/setting", requireAuth)
	{
		setting.PUT("/change-password", h.ChangePassword)
	}
}

// ChangePassword verifies the current password and sets a new one
// @Summary      Change password
// @Tags         setting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  service.ChangePasswordRequest  true  "Passwords"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/setting/change-password [put]
func (h *SettingHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload"))
		return
	}

	// Users can only change their own password; the body's userId is
	// ignored in favor of the authenticated identity.
	userID := c.GetString(middleware.ContextUserID)

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(nil))
}
