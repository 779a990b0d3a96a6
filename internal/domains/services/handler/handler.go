package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/domains/services"
	"paintpro-backend/internal/shared/response"
)

type ServicesHandler struct {
	service services.Service
}

func NewServicesHandler(service services.Service) *ServicesHandler {
	return &ServicesHandler{service: service}
}

// Get handles GET /api/services
func (h *ServicesHandler) Get(c *gin.Context) {
	section, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, section)
}

// Put handles PUT /api/services
func (h *ServicesHandler) Put(c *gin.Context) {
	var req services.UpdateRequest
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

// Post handles POST /api/services (append one item)
func (h *ServicesHandler) Post(c *gin.Context) {
	var item services.ItemInput
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

// Delete handles DELETE /api/services?id=<n>
func (h *ServicesHandler) Delete(c *gin.Context) {
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

// Patch handles PATCH /api/services (bulk reorder)
func (h *ServicesHandler) Patch(c *gin.Context) {
	var req services.ReorderRequest
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
