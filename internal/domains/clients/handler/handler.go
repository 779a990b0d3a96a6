package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/domains/clients"
	"paintpro-backend/internal/shared/response"
)

type ClientsHandler struct {
	service clients.Service
}

func NewClientsHandler(service clients.Service) *ClientsHandler {
	return &ClientsHandler{service: service}
}

// Get handles GET /api/clients
func (h *ClientsHandler) Get(c *gin.Context) {
	section, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, section)
}

// Put handles PUT /api/clients
func (h *ClientsHandler) Put(c *gin.Context) {
	var req clients.UpdateRequest
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

// Post handles POST /api/clients (append one item)
func (h *ClientsHandler) Post(c *gin.Context) {
	var item clients.ItemInput
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

// Delete handles DELETE /api/clients?id=<n>
func (h *ClientsHandler) Delete(c *gin.Context) {
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

// Patch handles PATCH /api/clients (bulk reorder)
func (h *ClientsHandler) Patch(c *gin.Context) {
	var req clients.ReorderRequest
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
