package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// RegisterRoutes binds the audit endpoints under /api/audit (admin-only)
func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	audit := router.Group("/audit", requireAuth, requireAdmin)
	{
		audit.GET("", h.List)
	}
}

// List returns the audit trail, newest first
// @Summary      List audit entries
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	params := pagination.Parse(c)

	entries, total, err := h.auditService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"logs": entries, "pagination": params.Meta(total)}))
}
