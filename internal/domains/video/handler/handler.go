package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/domains/video"
	"paintpro-backend/internal/shared/response"
)

type VideoHandler struct {
	service video.Service
}

func NewVideoHandler(service video.Service) *VideoHandler {
	return &VideoHandler{service: service}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, videos)
}

// Get handles GET /api/videos/:id. Single-video reads wrap the record under a
// "video" key, which the site player consumes directly.
func (h *VideoHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "video id must be an integer")
		return
	}

	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"video": v})
}

// Post handles POST /api/videos
func (h *VideoHandler) Post(c *gin.Context) {
	var req video.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	v, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, v)
}

// Delete handles DELETE /api/videos?id=<n>
func (h *VideoHandler) Delete(c *gin.Context) {
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
