package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/domains/projects"
	"paintpro-backend/internal/shared/response"
)

type ProjectsHandler struct {
	service projects.Service
}

func NewProjectsHandler(service projects.Service) *ProjectsHandler {
	return &ProjectsHandler{service: service}
}

// Get handles GET /api/projects
func (h *ProjectsHandler) Get(c *gin.Context) {
	section, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, section)
}

// Put handles PUT /api/projects
func (h *ProjectsHandler) Put(c *gin.Context) {
	var req projects.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	section, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, section)
}

// Post handles POST /api/projects (append one item)
func (h *ProjectsHandler) Post(c *gin.Context) {
	var item projects.ItemInput
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	section, err := h.service.Add(c.Request.Context(), &item)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, section)
}

// Delete handles DELETE /api/projects?id=<n>
func (h *ProjectsHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id query parameter must be an integer")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// Patch handles PATCH /api/projects (bulk reorder)
func (h *ProjectsHandler) Patch(c *gin.Context) {
	var req projects.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	section, err := h.service.Reorder(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, section)
}
