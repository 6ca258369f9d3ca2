package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes binds the dashboard endpoints under /api/dashboard
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	dashboard := router.Group("/dashboard", requireAuth)
	{
		dashboard.GET("/summary", requireAdmin, h.Summary)
		dashboard.GET("/employee-summary/:employeeId", h.EmployeeSummary)
	}
}

// Summary returns the admin dashboard aggregates
// @Summary      Admin dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"totalEmployees":   summary.TotalEmployees,
		"totalDepartments": summary.TotalDepartments,
		"ideaSummary":      summary.IdeaSummary,
	}))
}

// EmployeeSummary returns one employee's idea aggregates
// @Summary      Employee idea summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path  string  true  "Employee ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/dashboard/employee-summary/{employeeId} [get]
func (h *DashboardHandler) EmployeeSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetEmployeeSummary(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"ideaSummary": summary}))
}
