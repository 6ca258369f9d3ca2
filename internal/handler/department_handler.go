package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService service.DepartmentService
}

func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// RegisterRoutes binds the department endpoints under /api/department.
// Mutations are admin-only.
func (h *DepartmentHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	dep := router.Group("/department", requireAuth)
	{
		dep.GET("", h.List)
		dep.GET("/:id", h.Get)
		dep.POST("/add", requireAdmin, h.Create)
		dep.PUT("/:id", requireAdmin, h.Update)
		dep.DELETE("/:id", requireAdmin, h.Delete)
	}
}

// List returns all departments
// @Summary      List departments
// @Tags         department
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/department [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	params := pagination.Parse(c)

	departments, total, err := h.departmentService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"departments": departments, "pagination": params.Meta(total)}))
}

// Get returns one department
// @Summary      Get department
// @Tags         department
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Department ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/department/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	department, err := h.departmentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"department": department}))
}

// Create adds a department
// @Summary      Create department
// @Tags         department
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  service.DepartmentRequest  true  "Department"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/department/add [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req service.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	department, err := h.departmentService.Create(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"department": department}))
}

// Update edits a department
// @Summary      Update department
// @Tags         department
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                     true  "Department ID"
// @Param        payload  body  service.DepartmentRequest  true  "Department"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/department/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	var req service.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	department, err := h.departmentService.Update(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"department": department}))
}

// Delete removes a department and cascades to its employees and their ideas
// @Summary      Delete department
// @Tags         department
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Department ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/department/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	department, err := h.departmentService.Delete(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"deletedep": department}))
}
