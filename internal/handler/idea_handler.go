package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type IdeaHandler struct {
	ideaService service.IdeaService
}

func NewIdeaHandler(ideaService service.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// RegisterRoutes binds the idea endpoints under /api/idea. Listing the full
// board and reviewing are admin-only; submission and own-idea reads are open
// to any authenticated user.
func (h *IdeaHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	idea := router.Group("/idea", requireAuth)
	{
		idea.POST("/add", h.Add)
		idea.GET("", requireAdmin, h.List)
		idea.GET("/:id", h.ListByEmployee)
		idea.GET("/detail/:id", h.Detail)
		idea.PUT("/:id", requireAdmin, h.UpdateStatus)
	}
}

// Add submits a new idea for the authenticated user's employee record
// @Summary      Submit idea
// @Tags         idea
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  service.AddIdeaRequest  true  "Idea"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/idea/add [post]
func (h *IdeaHandler) Add(c *gin.Context) {
	var req service.AddIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	// The submitting user comes from the verified token, not the body;
	// the body's userId survives only for older clients that still send it.
	userID := c.GetString(middleware.ContextUserID)
	if req.UserID != "" && c.GetString(middleware.ContextUserRole) == model.RoleAdmin {
		userID = req.UserID
	}

	idea, err := h.ideaService.Add(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"idea": idea}))
}

// List returns all ideas with employee, user and department preloaded
// @Summary      List ideas
// @Tags         idea
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/idea [get]
func (h *IdeaHandler) List(c *gin.Context) {
	params := pagination.Parse(c)

	ideas, total, err := h.ideaService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"ideas": ideas, "pagination": params.Meta(total)}))
}

// ListByEmployee returns the ideas of one employee (id or user id)
// @Summary      List employee ideas
// @Tags         idea
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee or user ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/idea/{id} [get]
func (h *IdeaHandler) ListByEmployee(c *gin.Context) {
	ideas, err := h.ideaService.ListByEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"ideas": ideas}))
}

// Detail returns one idea with its relations
// @Summary      Idea detail
// @Tags         idea
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Idea ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/idea/detail/{id} [get]
func (h *IdeaHandler) Detail(c *gin.Context) {
	idea, err := h.ideaService.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"idea": idea}))
}

// UpdateStatus approves or rejects a pending idea
// @Summary      Review idea
// @Tags         idea
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                     true  "Idea ID"
// @Param        payload  body  service.UpdateIdeaRequest  true  "Status and remarks"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/idea/{id} [put]
func (h *IdeaHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	idea, err := h.ideaService.UpdateStatus(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"idea": idea}))
}
