package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterRoutes binds the employee endpoints under /api/employee.
// Mutations are admin-only; reads stay open to any authenticated user so
// employees can load their own profile.
func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	emp := router.Group("/employee", requireAuth)
	{
		emp.GET("", h.List)
		emp.GET("/:id", h.Get)
		emp.POST("/add", requireAdmin, h.Add)
		emp.PUT("/:id", requireAdmin, h.Update)
		emp.DELETE("/:id", requireAdmin, h.Delete)
	}
}

// List returns all employees with user and department preloaded
// @Summary      List employees
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/employee [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	params := pagination.Parse(c)

	employees, total, err := h.employeeService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"employees": employees, "pagination": params.Meta(total)}))
}

// Get returns one employee, resolving the id as employee id or user id
// @Summary      Get employee
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee or user ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/employee/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.employeeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"employee": employee}))
}

// Add creates a user plus employee record
// @Summary      Add employee
// @Tags         employee
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  service.AddEmployeeRequest  true  "Employee"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/employee/add [post]
func (h *EmployeeHandler) Add(c *gin.Context) {
	var req service.AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.employeeService.Add(c.Request.Context(), c.GetString(middleware.ContextUserID), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"message": "Employee created"}))
}

// Update edits an employee and its user's name
// @Summary      Update employee
// @Tags         employee
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                         true  "Employee ID"
// @Param        payload  body  service.UpdateEmployeeRequest  true  "Employee"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/employee/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.employeeService.Update(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"message": "Employee updated"}))
}

// Delete removes an employee, its ideas, and its user account
// @Summary      Delete employee
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/employee/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeService.Delete(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"message": "Employee and associated ideas deleted successfully."}))
}
